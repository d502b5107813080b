package postgres

import (
	gradeDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/grade"
	gradepkg "github.com/evening-academy/academy-management/internal/grade"
	"gorm.io/gorm"
)

type GradeRepository struct {
	db *gorm.DB
}

func NewGradeRepository(db *gorm.DB) gradepkg.RepositoryAPI {
	return &GradeRepository{db: db}
}

func (r *GradeRepository) Create(g *gradeDatamodel.Grade) error {
	return r.db.Create(g).Error
}

func (r *GradeRepository) GetByID(id string) (*gradeDatamodel.Grade, error) {
	var g gradeDatamodel.Grade
	if err := r.db.Where("id = ?", id).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GradeRepository) Update(g *gradeDatamodel.Grade) error {
	return r.db.Save(g).Error
}

func (r *GradeRepository) ListByStudent(studentID string) ([]*gradeDatamodel.Grade, error) {
	var grades []*gradeDatamodel.Grade
	err := r.db.Where("student_id = ?", studentID).Order("created_at DESC").Find(&grades).Error
	return grades, err
}

func (r *GradeRepository) ListByAssignment(assignmentID string) ([]*gradeDatamodel.Grade, error) {
	var grades []*gradeDatamodel.Grade
	err := r.db.Where("assignment_id = ?", assignmentID).Order("created_at ASC").Find(&grades).Error
	return grades, err
}

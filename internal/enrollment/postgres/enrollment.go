package postgres

import (
	enrollmentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/enrollment"
	enrollmentpkg "github.com/evening-academy/academy-management/internal/enrollment"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) enrollmentpkg.RepositoryAPI {
	return &EnrollmentRepository{db: db}
}

// Upsert inserts or, on the (student_id, course_id) unique index, updates the
// status columns in place. Repeated payment verification lands here, so a
// conflict is the normal path, not an error.
func (r *EnrollmentRepository) Upsert(e *enrollmentDatamodel.Enrollment) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}, {Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"approval_status", "enrollment_status", "updated_at",
		}),
	}).Create(e).Error
}

func (r *EnrollmentRepository) GetByStudentAndCourse(studentID, courseID string) (*enrollmentDatamodel.Enrollment, error) {
	var e enrollmentDatamodel.Enrollment
	if err := r.db.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EnrollmentRepository) GetByID(id string) (*enrollmentDatamodel.Enrollment, error) {
	var e enrollmentDatamodel.Enrollment
	if err := r.db.Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EnrollmentRepository) Update(e *enrollmentDatamodel.Enrollment) error {
	return r.db.Save(e).Error
}

func (r *EnrollmentRepository) ListByStudent(studentID string) ([]*enrollmentDatamodel.Enrollment, error) {
	var enrollments []*enrollmentDatamodel.Enrollment
	err := r.db.Where("student_id = ?", studentID).Order("created_at DESC").Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) ListByCourse(courseID string) ([]*enrollmentDatamodel.Enrollment, error) {
	var enrollments []*enrollmentDatamodel.Enrollment
	err := r.db.Where("course_id = ?", courseID).Order("created_at ASC").Find(&enrollments).Error
	return enrollments, err
}

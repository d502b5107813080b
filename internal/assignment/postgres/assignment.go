package postgres

import (
	assignmentpkg "github.com/evening-academy/academy-management/internal/assignment"
	assignmentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/assignment"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) assignmentpkg.RepositoryAPI {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) Create(a *assignmentDatamodel.Assignment) error {
	return r.db.Create(a).Error
}

func (r *AssignmentRepository) GetByID(id string) (*assignmentDatamodel.Assignment, error) {
	var a assignmentDatamodel.Assignment
	if err := r.db.Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentRepository) Update(a *assignmentDatamodel.Assignment) error {
	return r.db.Save(a).Error
}

func (r *AssignmentRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&assignmentDatamodel.Assignment{}).Error
}

func (r *AssignmentRepository) ListByCourse(courseID string) ([]*assignmentDatamodel.Assignment, error) {
	var assignments []*assignmentDatamodel.Assignment
	err := r.db.Where("course_id = ?", courseID).Order("created_at DESC").Find(&assignments).Error
	return assignments, err
}

// UpsertSubmission replaces the file columns on the (assignment_id, student_id)
// unique index so a student can resubmit before grading.
func (r *AssignmentRepository) UpsertSubmission(s *assignmentDatamodel.Submission) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "assignment_id"}, {Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"file_url", "file_name", "file_type", "submitted_at",
		}),
	}).Create(s).Error
}

func (r *AssignmentRepository) GetSubmission(assignmentID, studentID string) (*assignmentDatamodel.Submission, error) {
	var s assignmentDatamodel.Submission
	if err := r.db.Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *AssignmentRepository) GetSubmissionByID(id string) (*assignmentDatamodel.Submission, error) {
	var s assignmentDatamodel.Submission
	if err := r.db.Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *AssignmentRepository) UpdateSubmission(s *assignmentDatamodel.Submission) error {
	return r.db.Save(s).Error
}

func (r *AssignmentRepository) ListSubmissions(assignmentID string) ([]*assignmentDatamodel.Submission, error) {
	var subs []*assignmentDatamodel.Submission
	err := r.db.Where("assignment_id = ?", assignmentID).Order("submitted_at ASC").Find(&subs).Error
	return subs, err
}

func (r *AssignmentRepository) ListSubmissionsByStudent(studentID string) ([]*assignmentDatamodel.Submission, error) {
	var subs []*assignmentDatamodel.Submission
	err := r.db.Where("student_id = ?", studentID).Order("submitted_at DESC").Find(&subs).Error
	return subs, err
}

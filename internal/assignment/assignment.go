package assignment

import (
	assignmentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/assignment"
)

type RepositoryAPI interface {
	Create(a *assignmentDatamodel.Assignment) error
	GetByID(id string) (*assignmentDatamodel.Assignment, error)
	Update(a *assignmentDatamodel.Assignment) error
	Delete(id string) error
	ListByCourse(courseID string) ([]*assignmentDatamodel.Assignment, error)

	UpsertSubmission(s *assignmentDatamodel.Submission) error
	GetSubmission(assignmentID, studentID string) (*assignmentDatamodel.Submission, error)
	GetSubmissionByID(id string) (*assignmentDatamodel.Submission, error)
	UpdateSubmission(s *assignmentDatamodel.Submission) error
	ListSubmissions(assignmentID string) ([]*assignmentDatamodel.Submission, error)
	ListSubmissionsByStudent(studentID string) ([]*assignmentDatamodel.Submission, error)
}

// EnrollmentChecker gates submissions to students actually enrolled in the
// assignment's course.
type EnrollmentChecker interface {
	IsEnrolled(studentID, courseID string) (bool, error)
}

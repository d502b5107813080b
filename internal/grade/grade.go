package grade

import (
	assignmentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/assignment"
	gradeDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/grade"
	profileDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/profile"
)

type RepositoryAPI interface {
	Create(g *gradeDatamodel.Grade) error
	GetByID(id string) (*gradeDatamodel.Grade, error)
	Update(g *gradeDatamodel.Grade) error
	ListByStudent(studentID string) ([]*gradeDatamodel.Grade, error)
	ListByAssignment(assignmentID string) ([]*gradeDatamodel.Grade, error)
}

type AssignmentStore interface {
	ListByCourse(courseID string) ([]*assignmentDatamodel.Assignment, error)
}

type ProfileStore interface {
	GetByID(id string) (*profileDatamodel.Profile, error)
}

// Letter converts a percentage score to the report-card letter.
func Letter(percent float64) string {
	switch {
	case percent >= 90:
		return "A"
	case percent >= 80:
		return "B"
	case percent >= 70:
		return "C"
	case percent >= 60:
		return "D"
	default:
		return "F"
	}
}

// GradeView decorates a stored grade with its percentage and letter.
type GradeView struct {
	*gradeDatamodel.Grade
	Percent float64 `json:"percent"`
	Letter  string  `json:"letter"`
}

// CourseSummary aggregates one student's grades within one course.
type CourseSummary struct {
	CourseID     string  `json:"course_id"`
	StudentID    string  `json:"student_id"`
	GradedCount  int     `json:"graded_count"`
	TotalScore   float64 `json:"total_score"`
	TotalMax     float64 `json:"total_max"`
	Percent      float64 `json:"percent"`
	Letter       string  `json:"letter"`
}

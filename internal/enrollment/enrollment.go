package enrollment

import (
	courseDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/course"
	enrollmentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/enrollment"
	profileDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/profile"
)

// RepositoryAPI persists enrollments keyed by (student, course). Upsert must
// be safe against the unique index: an existing pair is updated in place.
type RepositoryAPI interface {
	Upsert(e *enrollmentDatamodel.Enrollment) error
	GetByStudentAndCourse(studentID, courseID string) (*enrollmentDatamodel.Enrollment, error)
	GetByID(id string) (*enrollmentDatamodel.Enrollment, error)
	Update(e *enrollmentDatamodel.Enrollment) error
	ListByStudent(studentID string) ([]*enrollmentDatamodel.Enrollment, error)
	ListByCourse(courseID string) ([]*enrollmentDatamodel.Enrollment, error)
}

// CourseStore and ProfileStore are the read-only slices the enrollment flow
// needs from neighbouring domains.
type CourseStore interface {
	GetByID(id string) (*courseDatamodel.Course, error)
}

type ProfileStore interface {
	GetByID(id string) (*profileDatamodel.Profile, error)
}

// RosterEntry pairs an enrollment with the student behind it for teacher and
// admin course views.
type RosterEntry struct {
	Enrollment *enrollmentDatamodel.Enrollment `json:"enrollment"`
	Student    *profileDatamodel.Profile       `json:"student"`
}

// EnrollmentView pairs an enrollment with its course for the student view.
type EnrollmentView struct {
	Enrollment *enrollmentDatamodel.Enrollment `json:"enrollment"`
	Course     *courseDatamodel.Course         `json:"course"`
}

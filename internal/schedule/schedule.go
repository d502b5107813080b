package schedule

import (
	courseDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/course"
	enrollmentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/enrollment"
	scheduleDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/schedule"
)

type RepositoryAPI interface {
	Create(e *scheduleDatamodel.Entry) error
	GetByID(id string) (*scheduleDatamodel.Entry, error)
	Update(e *scheduleDatamodel.Entry) error
	Delete(id string) error
	ListByCourse(courseID string) ([]*scheduleDatamodel.Entry, error)
	ListByDay(dayOfWeek string) ([]*scheduleDatamodel.Entry, error)
}

// EnrollmentStore and CourseStore resolve which courses a user's week is
// built from. Satisfied by the enrollment and course repositories.
type EnrollmentStore interface {
	ListByStudent(studentID string) ([]*enrollmentDatamodel.Enrollment, error)
}

type CourseStore interface {
	ListByTeacher(teacherID string) ([]*courseDatamodel.Course, error)
}

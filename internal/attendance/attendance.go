package attendance

import (
	attendanceDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/attendance"
)

type RepositoryAPI interface {
	Create(rec *attendanceDatamodel.Record) error
	GetByID(id string) (*attendanceDatamodel.Record, error)
	ListByCourse(courseID string) ([]*attendanceDatamodel.Record, error)
	ListByStudent(studentID string) ([]*attendanceDatamodel.Record, error)
}

// StudentRate is a student's attendance over the sessions that mention them.
type StudentRate struct {
	StudentID string  `json:"student_id"`
	Present   int     `json:"present"`
	Absent    int     `json:"absent"`
	Rate      float64 `json:"rate"`
}

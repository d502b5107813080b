package attendance

import (
	"time"

	"gorm.io/datatypes"
)

// Record is one attendance-taking session for a course. Present and absent
// student ids are JSON arrays; a student id must not appear in both.
type Record struct {
	ID                string                      `gorm:"primaryKey" json:"id"`
	CourseID          string                      `gorm:"column:course_id;index;not null" json:"course_id"`
	Date              time.Time                   `gorm:"column:date;not null" json:"date"`
	PresentStudentIDs datatypes.JSONSlice[string] `gorm:"column:present_student_ids" json:"present_student_ids"`
	AbsentStudentIDs  datatypes.JSONSlice[string] `gorm:"column:absent_student_ids" json:"absent_student_ids"`
}

func (Record) TableName() string {
	return "attendance"
}

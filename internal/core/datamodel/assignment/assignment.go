package assignment

import (
	"time"
)

type Assignment struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	CourseID    string     `gorm:"column:course_id;index;not null" json:"course_id"`
	Title       string     `gorm:"column:title;not null" json:"title"`
	Description string     `gorm:"column:description" json:"description"`
	DueDate     *time.Time `gorm:"column:due_date" json:"due_date,omitempty"`
	FileURL     *string    `gorm:"column:file_url" json:"file_url,omitempty"`
	FileName    *string    `gorm:"column:file_name" json:"file_name,omitempty"`
	FileType    *string    `gorm:"column:file_type" json:"file_type,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at;default:now()" json:"created_at"`
}

func (Assignment) TableName() string {
	return "assignments"
}

// Submission is unique per (assignment, student); resubmitting replaces the
// file metadata and clears any previous grade.
type Submission struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	AssignmentID string     `gorm:"column:assignment_id;not null;uniqueIndex:idx_assignment_student" json:"assignment_id"`
	StudentID    string     `gorm:"column:student_id;not null;uniqueIndex:idx_assignment_student" json:"student_id"`
	FileURL      *string    `gorm:"column:file_url" json:"file_url,omitempty"`
	FileName     *string    `gorm:"column:file_name" json:"file_name,omitempty"`
	FileType     *string    `gorm:"column:file_type" json:"file_type,omitempty"`
	Grade        *float64   `gorm:"column:grade" json:"grade,omitempty"`
	Feedback     *string    `gorm:"column:feedback" json:"feedback,omitempty"`
	SubmittedAt  time.Time  `gorm:"column:submitted_at;default:now()" json:"submitted_at"`
	GradedAt     *time.Time `gorm:"column:graded_at" json:"graded_at,omitempty"`
}

func (Submission) TableName() string {
	return "assignment_submissions"
}

package enrollment

import (
	"time"
)

// ApprovalStatus tracks the teacher-approval workflow, EnrollmentStatus tracks
// the payment workflow. The two are deliberately separate columns: the legacy
// schema overloaded one status string for both and the meanings drifted.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"

	NotEnrolled = "not_enrolled"
	Enrolled    = "enrolled"
)

type Enrollment struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	StudentID        string    `gorm:"column:student_id;not null;uniqueIndex:idx_student_course" json:"student_id"`
	CourseID         string    `gorm:"column:course_id;not null;uniqueIndex:idx_student_course" json:"course_id"`
	ApprovalStatus   string    `gorm:"column:approval_status;default:pending" json:"approval_status"`
	EnrollmentStatus string    `gorm:"column:enrollment_status;default:not_enrolled" json:"enrollment_status"`
	CreatedAt        time.Time `gorm:"column:created_at;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;default:now()" json:"updated_at"`
}

func (Enrollment) TableName() string {
	return "course_enrollments"
}

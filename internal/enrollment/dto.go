package enrollment

import (
	"github.com/evening-academy/academy-management/internal/core/common/validation"
	enrollmentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/enrollment"
)

type RequestEnrollmentDTO struct {
	CourseID string `json:"course_id"`
}

func (d *RequestEnrollmentDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("course_id", d.CourseID).Required()

	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type ReviewEnrollmentDTO struct {
	ApprovalStatus string `json:"approval_status"`
}

func (d *ReviewEnrollmentDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("approval_status", d.ApprovalStatus).
		Required().
		OneOf(enrollmentDatamodel.ApprovalApproved, enrollmentDatamodel.ApprovalRejected)

	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

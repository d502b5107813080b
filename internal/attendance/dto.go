package attendance

import (
	"time"

	errors "github.com/evening-academy/academy-management/internal"
	"github.com/evening-academy/academy-management/internal/core/common/validation"
)

type RecordSessionDTO struct {
	CourseID          string    `json:"course_id"`
	Date              time.Time `json:"date"`
	PresentStudentIDs []string  `json:"present_student_ids"`
	AbsentStudentIDs  []string  `json:"absent_student_ids"`
}

func (d *RecordSessionDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("course_id", d.CourseID).Required()
	v.Field("date", d.Date).NotFuture()

	if err := v.Validate(); err != nil {
		return err
	}

	if d.Date.IsZero() {
		return errors.NewValidationFieldError("date", "date is required", errors.ErrCodeInvalidDate)
	}

	present := make(map[string]bool, len(d.PresentStudentIDs))
	for _, id := range d.PresentStudentIDs {
		present[id] = true
	}
	for _, id := range d.AbsentStudentIDs {
		if present[id] {
			return errors.NewValidationFieldError("absent_student_ids",
				"a student cannot be both present and absent", errors.ErrCodeValidationFailed)
		}
	}

	return nil
}

package grade

import (
	errors "github.com/evening-academy/academy-management/internal"
	"github.com/evening-academy/academy-management/internal/core/common/validation"
)

type RecordGradeDTO struct {
	StudentID    string  `json:"student_id"`
	AssignmentID string  `json:"assignment_id"`
	Score        float64 `json:"score"`
	MaxScore     float64 `json:"max_score"`
}

func (d *RecordGradeDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("student_id", d.StudentID).Required()
	v.Field("assignment_id", d.AssignmentID).Required()

	if err := v.Validate(); err != nil {
		return err
	}

	if d.MaxScore <= 0 {
		return errors.NewValidationFieldError("max_score", "max_score must be greater than 0", errors.ErrCodeValidationFailed)
	}
	if d.Score < 0 || d.Score > d.MaxScore {
		return errors.NewValidationFieldError("score", "score must be between 0 and max_score", errors.ErrCodeValidationFailed)
	}
	return nil
}

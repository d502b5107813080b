package assignment

import (
	"time"

	errors "github.com/evening-academy/academy-management/internal"
	"github.com/evening-academy/academy-management/internal/core/common/validation"
)

type CreateAssignmentDTO struct {
	CourseID    string     `json:"course_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	FileURL     *string    `json:"file_url,omitempty"`
	FileName    *string    `json:"file_name,omitempty"`
	FileType    *string    `json:"file_type,omitempty"`
}

func (d *CreateAssignmentDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("course_id", d.CourseID).Required()
	v.Field("title", d.Title).Required().MaxLength(200)

	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type SubmitDTO struct {
	FileURL  string `json:"file_url"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
}

func (d *SubmitDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("file_url", d.FileURL).Required()
	v.Field("file_name", d.FileName).Required()

	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type GradeSubmissionDTO struct {
	Grade    float64 `json:"grade"`
	Feedback *string `json:"feedback,omitempty"`
}

func (d *GradeSubmissionDTO) Validate() error {
	if d.Grade < 0 || d.Grade > 100 {
		return errors.NewValidationFieldError("grade", "grade must be between 0 and 100", errors.ErrCodeValidationFailed)
	}
	return nil
}

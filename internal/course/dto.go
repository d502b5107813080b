package course

import (
	"github.com/evening-academy/academy-management/internal/core/common/validation"
)

type CreateCourseDTO struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	TeacherID   string `json:"teacher_id"`
	Room        string `json:"room"`
}

func (d *CreateCourseDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MaxLength(200)
	v.Field("code", d.Code).Required().MaxLength(20)
	v.Field("teacher_id", d.TeacherID).Required()

	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type UpdateCourseDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Room        *string `json:"room,omitempty"`
}

type AddMaterialDTO struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

func (d *AddMaterialDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required()
	v.Field("url", d.URL).Required()

	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

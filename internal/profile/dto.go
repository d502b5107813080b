package profile

import (
	"github.com/evening-academy/academy-management/internal/core/common/validation"
)

type UpdateProfileDTO struct {
	Name   string  `json:"name"`
	Phone  string  `json:"phone"`
	Avatar *string `json:"avatar,omitempty"`
}

func (d *UpdateProfileDTO) Validate() error {
	validator := validation.NewValidator()

	validator.Field("name", d.Name).Required().MaxLength(200)
	validator.Field("phone", d.Phone).MaxLength(30)

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

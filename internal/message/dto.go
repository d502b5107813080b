package message

import (
	"github.com/evening-academy/academy-management/internal/core/common/validation"
)

type SendMessageDTO struct {
	RecipientID string `json:"recipient_id"`
	Content     string `json:"content"`
}

func (d *SendMessageDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("recipient_id", d.RecipientID).Required()
	v.Field("content", d.Content).Required().MaxLength(4000)

	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

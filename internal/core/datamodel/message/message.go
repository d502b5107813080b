package message

import (
	"time"
)

type Message struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	SenderID    string    `gorm:"column:sender_id;index;not null" json:"sender_id"`
	RecipientID string    `gorm:"column:recipient_id;index;not null" json:"recipient_id"`
	Content     string    `gorm:"column:content;not null" json:"content"`
	Read        bool      `gorm:"column:read;default:false" json:"read"`
	CreatedAt   time.Time `gorm:"column:created_at;default:now()" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

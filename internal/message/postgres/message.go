package postgres

import (
	messageDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/message"
	messagepkg "github.com/evening-academy/academy-management/internal/message"
	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) messagepkg.RepositoryAPI {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(m *messageDatamodel.Message) error {
	return r.db.Create(m).Error
}

func (r *MessageRepository) GetByID(id string) (*messageDatamodel.Message, error) {
	var m messageDatamodel.Message
	if err := r.db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MessageRepository) MarkRead(id string) error {
	return r.db.Model(&messageDatamodel.Message{}).Where("id = ?", id).Update("read", true).Error
}

func (r *MessageRepository) ListConversation(userA, userB string) ([]*messageDatamodel.Message, error) {
	var messages []*messageDatamodel.Message
	err := r.db.
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepository) ListInbox(recipientID string) ([]*messageDatamodel.Message, error) {
	var messages []*messageDatamodel.Message
	err := r.db.Where("recipient_id = ?", recipientID).Order("created_at DESC").Find(&messages).Error
	return messages, err
}

package message

import (
	messageDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/message"
	profileDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/profile"
)

type RepositoryAPI interface {
	Create(m *messageDatamodel.Message) error
	GetByID(id string) (*messageDatamodel.Message, error)
	MarkRead(id string) error
	ListConversation(userA, userB string) ([]*messageDatamodel.Message, error)
	ListInbox(recipientID string) ([]*messageDatamodel.Message, error)
}

type ProfileStore interface {
	GetByID(id string) (*profileDatamodel.Profile, error)
}

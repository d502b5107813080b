package message

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/evening-academy/academy-management/internal"
	messageDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/message"
	"github.com/evening-academy/academy-management/internal/core/events"
)

type Service struct {
	repo     RepositoryAPI
	profiles ProfileStore
	hub      *Hub
	eventBus *events.EventBus
	logger   *slog.Logger
}

func NewService(repo RepositoryAPI, profiles ProfileStore, hub *Hub, eventBus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		profiles: profiles,
		hub:      hub,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Send persists the message, then attempts live delivery over the recipient's
// websocket. Whether that worked is carried on the published event so the
// mail notifier can pick up the offline case.
func (s *Service) Send(ctx context.Context, senderID string, dto SendMessageDTO) (*messageDatamodel.Message, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	recipient, err := s.profiles.GetByID(dto.RecipientID)
	if err != nil {
		return nil, apperrors.ErrProfileNotFound
	}

	m := &messageDatamodel.Message{
		ID:          uuid.New().String(),
		SenderID:    senderID,
		RecipientID: dto.RecipientID,
		Content:     dto.Content,
	}

	if err := s.repo.Create(m); err != nil {
		s.logger.Error("failed to store message", "error", err, "sender_id", senderID)
		return nil, err
	}

	delivered := false
	if s.hub != nil {
		delivered = s.hub.Deliver(dto.RecipientID, m)
	}

	if s.eventBus != nil {
		senderName := senderID
		if p, err := s.profiles.GetByID(senderID); err == nil {
			senderName = p.Name
		}
		s.eventBus.Publish(ctx, events.NewMessageSentEvent(
			m.ID, senderID, senderName, recipient.ID, recipient.Email, delivered))
	}

	return m, nil
}

func (s *Service) Conversation(userA, userB string) ([]*messageDatamodel.Message, error) {
	return s.repo.ListConversation(userA, userB)
}

func (s *Service) Inbox(recipientID string) ([]*messageDatamodel.Message, error) {
	return s.repo.ListInbox(recipientID)
}

// MarkRead flags a message read; only its recipient may do so.
func (s *Service) MarkRead(messageID, readerID string) error {
	m, err := s.repo.GetByID(messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("Message not found", apperrors.ErrCodeMessageNotFound)
		}
		return err
	}

	if m.RecipientID != readerID {
		return apperrors.ErrUnauthorizedAccess
	}

	return s.repo.MarkRead(messageID)
}

package message

import (
	"context"
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	apperrors "github.com/evening-academy/academy-management/internal"
	messageDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/message"
	profileDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/profile"
)

type stubRepo struct {
	byID map[string]*messageDatamodel.Message
	read []string
}

func newStubRepo() *stubRepo {
	return &stubRepo{byID: make(map[string]*messageDatamodel.Message)}
}

func (s *stubRepo) Create(m *messageDatamodel.Message) error {
	s.byID[m.ID] = m
	return nil
}

func (s *stubRepo) GetByID(id string) (*messageDatamodel.Message, error) {
	if m, ok := s.byID[id]; ok {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) MarkRead(id string) error {
	s.read = append(s.read, id)
	return nil
}

func (s *stubRepo) ListConversation(userA, userB string) ([]*messageDatamodel.Message, error) {
	return nil, nil
}

func (s *stubRepo) ListInbox(recipientID string) ([]*messageDatamodel.Message, error) {
	return nil, nil
}

type stubProfiles struct {
	byID map[string]*profileDatamodel.Profile
}

func (s *stubProfiles) GetByID(id string) (*profileDatamodel.Profile, error) {
	if p, ok := s.byID[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

var _ = Describe("Message Service", func() {
	var (
		repo     *stubRepo
		profiles *stubProfiles
		service  *Service
	)

	BeforeEach(func() {
		repo = newStubRepo()
		profiles = &stubProfiles{byID: map[string]*profileDatamodel.Profile{
			"u1": {ID: "u1", Name: "Sam", Email: "sam@academy.test"},
			"u2": {ID: "u2", Name: "Nina", Email: "nina@academy.test"},
		}}
		lg := slog.New(slog.NewTextHandler(io.Discard, nil))
		service = NewService(repo, profiles, nil, nil, lg)
	})

	Describe("Send", func() {
		It("persists the message", func() {
			m, err := service.Send(context.Background(), "u1", SendMessageDTO{RecipientID: "u2", Content: "hi"})

			Expect(err).NotTo(HaveOccurred())
			Expect(repo.byID).To(HaveKey(m.ID))
		})

		It("rejects unknown recipients", func() {
			_, err := service.Send(context.Background(), "u1", SendMessageDTO{RecipientID: "ghost", Content: "hi"})
			Expect(err).To(MatchError(apperrors.ErrProfileNotFound))
		})
	})

	Describe("MarkRead", func() {
		It("lets only the recipient mark a message read", func() {
			m, err := service.Send(context.Background(), "u1", SendMessageDTO{RecipientID: "u2", Content: "hi"})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.MarkRead(m.ID, "u1")).To(MatchError(apperrors.ErrUnauthorizedAccess))
			Expect(service.MarkRead(m.ID, "u2")).To(Succeed())
			Expect(repo.read).To(ConsistOf(m.ID))
		})

		It("reports a missing message with its own code", func() {
			err := service.MarkRead("missing", "u2")

			appErr, ok := apperrors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(apperrors.ErrCodeMessageNotFound))
		})
	})
})

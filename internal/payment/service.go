package payment

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/evening-academy/academy-management/internal"
	"github.com/evening-academy/academy-management/internal/auth"
	paymentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/payment"
	"github.com/evening-academy/academy-management/internal/core/events"
)

// gatewayTimeout bounds outbound calls to the checkout provider.
const gatewayTimeout = 15 * time.Second

type Service struct {
	repo        RepositoryAPI
	gateway     Gateway
	profiles    ProfileStore
	enrollments EnrollmentActivator
	eventBus    *events.EventBus
	cfg         apperrors.PaymentConfig
	logger      *slog.Logger
}

func NewService(
	repo RepositoryAPI,
	gateway Gateway,
	profiles ProfileStore,
	enrollments EnrollmentActivator,
	eventBus *events.EventBus,
	cfg apperrors.PaymentConfig,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:        repo,
		gateway:     gateway,
		profiles:    profiles,
		enrollments: enrollments,
		eventBus:    eventBus,
		cfg:         cfg,
		logger:      logger,
	}
}

// Checkout creates a hosted checkout session for the given items and records
// one pending ledger row per item, all sharing the session id as their
// transaction id. It returns the gateway URL the caller redirects to.
func (s *Service) Checkout(ctx context.Context, user *auth.User, req CheckoutRequest) (*CheckoutResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetByID(user.ID)
	if err != nil {
		s.logger.Error("checkout: profile lookup failed", "error", err, "user_id", user.ID)
		return nil, apperrors.ErrProfileNotFound
	}

	customerID, err := s.ensureGatewayCustomer(ctx, profile.ID, profile.Email, profile.Name, profile.GatewayCustomerID)
	if err != nil {
		return nil, err
	}

	lineItems := make([]LineItem, len(req.Items))
	for i, item := range req.Items {
		lineItems[i] = LineItem{
			Name:        item.Name,
			Description: item.Description,
			Amount:      item.Amount,
		}
	}

	gwCtx, cancel := apperrors.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	session, err := s.gateway.CreateCheckoutSession(gwCtx, customerID, lineItems, s.successURL(req.Items), s.cfg.CancelURL)
	if err != nil {
		s.logger.Error("checkout: session creation failed", "error", err, "user_id", user.ID)
		return nil, apperrors.NewExternalError("failed to create checkout session", err)
	}

	now := time.Now()
	for _, item := range req.Items {
		row := &paymentDatamodel.Payment{
			ID:            uuid.New().String(),
			UserID:        user.ID,
			Amount:        item.Amount,
			Description:   item.Description,
			TransactionID: session.ID,
			Status:        paymentDatamodel.StatusPending,
			PaymentType:   item.Type,
			CourseID:      item.CourseID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.repo.Create(row); err != nil {
			// The gateway session already exists and has no ledger rows
			// behind it. Verification for it will always report not found.
			s.logger.Warn("checkout: ledger insert failed, gateway session is orphaned",
				"error", err, "session_id", session.ID, "user_id", user.ID)
			return nil, apperrors.NewInternalError("failed to record payment", err)
		}
	}

	s.logger.Info("checkout session created",
		"session_id", session.ID, "user_id", user.ID, "items", len(req.Items))

	return &CheckoutResponse{URL: session.URL}, nil
}

// Verify confirms a checkout session with the gateway and settles its ledger
// rows. Safe to call repeatedly for the same session: completed rows stay
// untouched and the downstream effects are upserts.
func (s *Service) Verify(ctx context.Context, user *auth.User, sessionID string) (*VerifyResult, error) {
	if sessionID == "" {
		return nil, apperrors.ErrMissingSessionID
	}

	gwCtx, cancel := apperrors.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	session, err := s.gateway.RetrieveSession(gwCtx, sessionID)
	if err != nil {
		s.logger.Error("verify: session retrieval failed", "error", err, "session_id", sessionID)
		return nil, apperrors.NewExternalError("failed to retrieve checkout session", err)
	}

	if session.PaymentStatus != SessionStatusPaid {
		return nil, apperrors.NewPaymentIncompleteError(session.PaymentStatus)
	}

	rows, err := s.repo.GetByTransactionAndUser(sessionID, user.ID)
	if err != nil {
		s.logger.Error("verify: ledger lookup failed", "error", err, "session_id", sessionID)
		return nil, apperrors.NewInternalError("failed to look up payments", err)
	}
	if len(rows) == 0 {
		// Either the session belongs to another user or the checkout never
		// wrote its ledger rows. Both surface the same way.
		s.logger.Warn("verify: no ledger rows for paid session",
			"session_id", sessionID, "user_id", user.ID)
		return nil, apperrors.ErrPaymentNotFound
	}

	hadPending := false
	for _, row := range rows {
		if row.Status == paymentDatamodel.StatusPending {
			hadPending = true
			break
		}
	}

	if hadPending {
		if err := s.repo.MarkCompleted(sessionID); err != nil {
			s.logger.Error("verify: failed to mark payments completed", "error", err, "session_id", sessionID)
			return nil, apperrors.NewInternalError("failed to update payments", err)
		}
	}

	var enrolled []string
	for _, row := range rows {
		switch row.PaymentType {
		case paymentDatamodel.TypeRegistration:
			if err := s.profiles.SetFeesPaid(user.ID, true); err != nil {
				s.logger.Error("verify: failed to set fees paid", "error", err, "user_id", user.ID)
				return nil, apperrors.NewInternalError("failed to update profile", err)
			}
		case paymentDatamodel.TypeCourse:
			if row.CourseID == nil {
				s.logger.Warn("verify: course payment row without course id", "payment_id", row.ID)
				continue
			}
			if err := s.enrollments.MarkEnrolled(ctx, user.ID, *row.CourseID); err != nil {
				s.logger.Error("verify: enrollment activation failed",
					"error", err, "user_id", user.ID, "course_id", *row.CourseID)
				return nil, apperrors.NewInternalError("failed to activate enrollment", err)
			}
			enrolled = append(enrolled, *row.CourseID)
		}
	}

	if hadPending && s.eventBus != nil {
		items := make([]events.ReceiptItem, len(rows))
		var total int64
		for i, row := range rows {
			items[i] = events.ReceiptItem{
				Description: row.Description,
				Amount:      row.Amount,
				PaymentType: row.PaymentType,
			}
			total += row.Amount
		}
		s.eventBus.Publish(ctx, events.NewPaymentCompletedEvent(user.ID, user.Email, sessionID, total, items))
	}

	s.logger.Info("payment verified",
		"session_id", sessionID, "user_id", user.ID,
		"rows", len(rows), "first_verification", hadPending)

	return &VerifyResult{
		Success:         true,
		SessionID:       sessionID,
		Status:          paymentDatamodel.StatusCompleted,
		EnrolledCourses: enrolled,
	}, nil
}

// Reconcile drives the post-redirect landing state machine. It always yields a
// terminal state: success after a good verification, failed otherwise. With no
// session id the gateway is never contacted.
func (s *Service) Reconcile(ctx context.Context, user *auth.User, sessionID string) *ReconcileResult {
	if sessionID == "" {
		return &ReconcileResult{
			State:          StateFailed,
			Error:          "No session ID found. Payment verification failed.",
			NavigationPath: "/payment",
		}
	}

	result, err := s.Verify(ctx, user, sessionID)
	if err != nil {
		msg := "Payment verification failed."
		if appErr, ok := apperrors.IsAppError(err); ok {
			msg = appErr.GetDetailedMessage()
		}
		return &ReconcileResult{
			State:          StateFailed,
			SessionID:      sessionID,
			Error:          msg,
			NavigationPath: "/payment",
		}
	}

	return &ReconcileResult{
		State:          StateSuccess,
		SessionID:      sessionID,
		EnrolledCount:  len(result.EnrolledCourses),
		NavigationPath: "/dashboard",
	}
}

func (s *Service) History(userID string) ([]*paymentDatamodel.Payment, error) {
	return s.repo.ListByUser(userID)
}

// ensureGatewayCustomer returns the cached gateway customer id or creates one
// and persists it so repeat checkouts reuse the same customer.
func (s *Service) ensureGatewayCustomer(ctx context.Context, profileID, email, name string, cached *string) (string, error) {
	if cached != nil && *cached != "" {
		return *cached, nil
	}

	customerID, err := s.gateway.CreateCustomer(ctx, email, name)
	if err != nil {
		s.logger.Error("failed to create gateway customer", "error", err, "profile_id", profileID)
		return "", apperrors.NewExternalError("failed to create gateway customer", err)
	}

	if err := s.profiles.SetGatewayCustomerID(profileID, customerID); err != nil {
		// Not fatal for this checkout, the next one just creates another customer.
		s.logger.Warn("failed to cache gateway customer id", "error", err, "profile_id", profileID)
	}

	return customerID, nil
}

// successURL keeps the gateway's session placeholder intact and appends the
// purchased course ids so the landing page can display them before verifying.
func (s *Service) successURL(items []CheckoutItem) string {
	var courseIDs []string
	for _, item := range items {
		if item.Type == paymentDatamodel.TypeCourse && item.CourseID != nil {
			courseIDs = append(courseIDs, *item.CourseID)
		}
	}
	if len(courseIDs) == 0 {
		return s.cfg.SuccessURL
	}

	sep := "?"
	if strings.Contains(s.cfg.SuccessURL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%scourse_ids=%s", s.cfg.SuccessURL, sep, url.QueryEscape(strings.Join(courseIDs, ",")))
}

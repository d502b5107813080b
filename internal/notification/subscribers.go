package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/evening-academy/academy-management/internal/core/events"
)

// Notifier wires the mailer to domain events: payment confirmations,
// enrollment confirmations, and offline message alerts.
type Notifier struct {
	mailer *Mailer
	logger *slog.Logger
}

func NewNotifier(mailer *Mailer, logger *slog.Logger) *Notifier {
	return &Notifier{
		mailer: mailer,
		logger: logger,
	}
}

func (n *Notifier) Register(bus *events.EventBus) {
	bus.Subscribe(events.EventTypePaymentCompleted, n.handlePaymentCompleted)
	bus.Subscribe(events.EventTypeStudentEnrolled, n.handleStudentEnrolled)
	bus.Subscribe(events.EventTypeMessageSent, n.handleMessageSent)
}

func (n *Notifier) handlePaymentCompleted(_ context.Context, event events.Event) error {
	e, ok := event.(*events.PaymentCompletedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.EventType())
	}
	if e.UserEmail == "" {
		return nil
	}

	var lines []string
	for _, item := range e.Items {
		lines = append(lines, fmt.Sprintf("<li>%s (%d.%02d)</li>", item.Description, item.Amount/100, item.Amount%100))
	}

	body := fmt.Sprintf(
		"<p>Your payment was received.</p><ul>%s</ul><p>Total: %d.%02d</p><p>Reference: %s</p>",
		strings.Join(lines, ""), e.AmountTotal/100, e.AmountTotal%100, e.SessionID)

	return n.mailer.Send(e.UserEmail, "Payment confirmation", body)
}

func (n *Notifier) handleStudentEnrolled(_ context.Context, event events.Event) error {
	e, ok := event.(*events.StudentEnrolledEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.EventType())
	}
	if e.StudentEmail == "" {
		return nil
	}

	body := fmt.Sprintf("<p>You are now enrolled in <strong>%s</strong>. Welcome aboard!</p>", e.CourseName)
	return n.mailer.Send(e.StudentEmail, "Enrollment confirmed", body)
}

// handleMessageSent only mails recipients that had no live websocket at send
// time; delivered messages were already seen.
func (n *Notifier) handleMessageSent(_ context.Context, event events.Event) error {
	e, ok := event.(*events.MessageSentEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.EventType())
	}
	if e.Delivered || e.RecipientEmail == "" {
		return nil
	}

	body := fmt.Sprintf("<p>You have a new message from %s waiting in your inbox.</p>", e.SenderName)
	return n.mailer.Send(e.RecipientEmail, "New message", body)
}

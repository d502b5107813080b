package payment

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/evening-academy/academy-management/internal/core/events"
)

// ReceiptWriter renders a PDF receipt for every verified checkout session and
// drops it under the configured directory, named after the session id.
type ReceiptWriter struct {
	dir    string
	logger *slog.Logger
}

func NewReceiptWriter(dir string, logger *slog.Logger) *ReceiptWriter {
	return &ReceiptWriter{dir: dir, logger: logger}
}

func (r *ReceiptWriter) Register(bus *events.EventBus) {
	bus.Subscribe(events.EventTypePaymentCompleted, r.handlePaymentCompleted)
}

func (r *ReceiptWriter) handlePaymentCompleted(_ context.Context, event events.Event) error {
	completed, ok := event.(*events.PaymentCompletedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.EventType())
	}

	path, err := r.Write(completed)
	if err != nil {
		return err
	}

	r.logger.Info("receipt written", "session_id", completed.SessionID, "path", path)
	return nil
}

func (r *ReceiptWriter) Write(e *events.PaymentCompletedEvent) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create receipt dir: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Payment Receipt")
	pdf.Ln(16)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Date: %s", e.OccurredAt().Format("02 Jan 2006 15:04")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Billed to: %s", e.UserEmail))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Session: %s", e.SessionID))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(110, 8, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Type", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, item := range e.Items {
		pdf.CellFormat(110, 8, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, item.PaymentType, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, formatAmount(item.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(150, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, formatAmount(e.AmountTotal), "1", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", time.Now().Format(time.RFC1123)))

	path := filepath.Join(r.dir, fmt.Sprintf("receipt-%s.pdf", e.SessionID))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write receipt pdf: %w", err)
	}

	return path, nil
}

// formatAmount renders minor currency units as a decimal string.
func formatAmount(minor int64) string {
	return fmt.Sprintf("%d.%02d", minor/100, minor%100)
}

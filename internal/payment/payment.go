package payment

import (
	"context"

	paymentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/payment"
	profileDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/profile"
)

// RepositoryAPI defines ledger operations. MarkCompleted touches only rows
// still pending so re-verification never bumps updated_at on finished rows.
type RepositoryAPI interface {
	Create(p *paymentDatamodel.Payment) error
	GetByTransactionAndUser(transactionID, userID string) ([]*paymentDatamodel.Payment, error)
	MarkCompleted(transactionID string) error
	ListByUser(userID string) ([]*paymentDatamodel.Payment, error)
}

// CheckoutSession mirrors the gateway's view of one hosted checkout.
type CheckoutSession struct {
	ID            string
	URL           string
	PaymentStatus string
	CustomerID    string
}

// Gateway payment status strings as reported by the checkout provider.
const (
	SessionStatusPaid   = "paid"
	SessionStatusUnpaid = "unpaid"
)

type LineItem struct {
	Name        string
	Description string
	Amount      int64
}

// Gateway is the hosted-checkout provider adapter. Implemented on the real
// provider SDK in internal/paymentgateway and faked in tests.
type Gateway interface {
	CreateCustomer(ctx context.Context, email, name string) (string, error)
	CreateCheckoutSession(ctx context.Context, customerID string, items []LineItem, successURL, cancelURL string) (*CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}

// ProfileStore is the slice of the profile repository the payment flow
// touches: the cached gateway customer id and the fees-paid flag.
type ProfileStore interface {
	GetByID(id string) (*profileDatamodel.Profile, error)
	SetFeesPaid(id string, paid bool) error
	SetGatewayCustomerID(id, customerID string) error
}

// EnrollmentActivator marks a student enrolled after payment. The
// implementation must be an idempotent upsert on (student, course).
type EnrollmentActivator interface {
	MarkEnrolled(ctx context.Context, studentID, courseID string) error
}

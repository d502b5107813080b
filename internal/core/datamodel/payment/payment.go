package payment

import (
	"time"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"

	TypeRegistration = "registration"
	TypeCourse       = "course"
)

// Payment is one ledger row. A single checkout produces one row per purchased
// item, all sharing the gateway's checkout-session id in TransactionID. Status
// only ever moves pending -> completed; abandoned sessions stay pending since
// the gateway never calls back for them.
type Payment struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	UserID        string    `gorm:"column:user_id;index;not null" json:"user_id"`
	Amount        int64     `gorm:"column:amount;not null" json:"amount"`
	Description   string    `gorm:"column:description" json:"description"`
	TransactionID string    `gorm:"column:transaction_id;index" json:"transaction_id"`
	Status        string    `gorm:"column:status;default:pending" json:"status"`
	PaymentType   string    `gorm:"column:payment_type" json:"payment_type"`
	CourseID      *string   `gorm:"column:course_id" json:"course_id,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at;default:now()" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;default:now()" json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

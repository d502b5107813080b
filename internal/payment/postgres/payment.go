package postgres

import (
	"time"

	paymentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/payment"
	paymentpkg "github.com/evening-academy/academy-management/internal/payment"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) paymentpkg.RepositoryAPI {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(p *paymentDatamodel.Payment) error {
	return r.db.Create(p).Error
}

func (r *PaymentRepository) GetByTransactionAndUser(transactionID, userID string) ([]*paymentDatamodel.Payment, error) {
	var payments []*paymentDatamodel.Payment
	err := r.db.
		Where("transaction_id = ? AND user_id = ?", transactionID, userID).
		Order("created_at ASC").
		Find(&payments).Error
	return payments, err
}

// MarkCompleted flips only the rows still pending so repeated verification
// leaves settled rows, and their updated_at, alone.
func (r *PaymentRepository) MarkCompleted(transactionID string) error {
	return r.db.Model(&paymentDatamodel.Payment{}).
		Where("transaction_id = ? AND status = ?", transactionID, paymentDatamodel.StatusPending).
		Updates(map[string]interface{}{
			"status":     paymentDatamodel.StatusCompleted,
			"updated_at": time.Now(),
		}).Error
}

func (r *PaymentRepository) ListByUser(userID string) ([]*paymentDatamodel.Payment, error) {
	var payments []*paymentDatamodel.Payment
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

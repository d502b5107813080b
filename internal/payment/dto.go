package payment

import (
	apperrors "github.com/evening-academy/academy-management/internal"
	paymentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/payment"
)

// CheckoutItem is one purchasable entry in a checkout request. Amount is in
// minor currency units. CourseID is set only for course purchases.
type CheckoutItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Amount      int64   `json:"amount"`
	Type        string  `json:"type"`
	CourseID    *string `json:"course_id,omitempty"`
}

type CheckoutRequest struct {
	Items []CheckoutItem `json:"items"`
}

func (r *CheckoutRequest) Validate() error {
	if len(r.Items) == 0 {
		return apperrors.ErrInvalidItems
	}

	for _, item := range r.Items {
		if item.Name == "" || item.Amount <= 0 {
			return apperrors.ErrInvalidItems
		}
		switch item.Type {
		case paymentDatamodel.TypeRegistration:
		case paymentDatamodel.TypeCourse:
			if item.CourseID == nil || *item.CourseID == "" {
				return apperrors.NewValidationError("course items require a course_id", apperrors.ErrCodeInvalidItems)
			}
		default:
			return apperrors.NewValidationError("payment type must be registration or course", apperrors.ErrCodeInvalidItems)
		}
	}

	return nil
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type VerifyRequest struct {
	SessionID string `json:"session_id"`
}

type VerifyResult struct {
	Success         bool     `json:"success"`
	SessionID       string   `json:"session_id"`
	Status          string   `json:"status"`
	EnrolledCourses []string `json:"enrolled_courses,omitempty"`
}

// Reconciliation states for the post-redirect landing. Failed is terminal for
// the page load; the caller re-navigates to retry.
const (
	StateVerifying = "verifying"
	StateSuccess   = "success"
	StateFailed    = "failed"
)

type ReconcileResult struct {
	State          string `json:"state"`
	SessionID      string `json:"session_id,omitempty"`
	EnrolledCount  int    `json:"enrolled_count"`
	Error          string `json:"error,omitempty"`
	NavigationPath string `json:"navigation_path"`
}

package profile

import (
	profileDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/profile"
)

// RepositoryAPI defines the profile store operations. SetFeesPaid and
// SetGatewayCustomerID are idempotent single-column updates used by the
// payment flow.
type RepositoryAPI interface {
	Create(p *profileDatamodel.Profile) error
	GetByID(id string) (*profileDatamodel.Profile, error)
	GetByEmail(email string) (*profileDatamodel.Profile, error)
	Update(p *profileDatamodel.Profile) error
	SetFeesPaid(id string, paid bool) error
	SetGatewayCustomerID(id, customerID string) error
	ListByRole(role string) ([]*profileDatamodel.Profile, error)
}

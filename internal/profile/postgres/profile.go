package postgres

import (
	profileDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/profile"
	profilepkg "github.com/evening-academy/academy-management/internal/profile"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) profilepkg.RepositoryAPI {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(p *profileDatamodel.Profile) error {
	return r.db.Create(p).Error
}

func (r *ProfileRepository) GetByID(id string) (*profileDatamodel.Profile, error) {
	var p profileDatamodel.Profile
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) GetByEmail(email string) (*profileDatamodel.Profile, error) {
	var p profileDatamodel.Profile
	if err := r.db.Where("email = ?", email).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) Update(p *profileDatamodel.Profile) error {
	return r.db.Save(p).Error
}

func (r *ProfileRepository) SetFeesPaid(id string, paid bool) error {
	return r.db.Model(&profileDatamodel.Profile{}).Where("id = ?", id).Update("fees_paid", paid).Error
}

func (r *ProfileRepository) SetGatewayCustomerID(id, customerID string) error {
	return r.db.Model(&profileDatamodel.Profile{}).Where("id = ?", id).Update("gateway_customer_id", customerID).Error
}

func (r *ProfileRepository) ListByRole(role string) ([]*profileDatamodel.Profile, error) {
	var profiles []*profileDatamodel.Profile
	err := r.db.Where("role = ?", role).Order("name ASC").Find(&profiles).Error
	return profiles, err
}

package profile

import (
	"time"
)

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// Profile is one account row. GatewayCustomerID caches the payment provider's
// customer id so repeated checkouts never create duplicate gateway customers.
type Profile struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"column:name" json:"name"`
	Email             string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Phone             string    `gorm:"column:phone" json:"phone"`
	Avatar            *string   `gorm:"column:avatar" json:"avatar,omitempty"`
	Role              string    `gorm:"column:role;default:student" json:"role"`
	FeesPaid          bool      `gorm:"column:fees_paid;default:false" json:"fees_paid"`
	GatewayCustomerID *string   `gorm:"column:gateway_customer_id" json:"-"`
	PasswordHash      string    `gorm:"column:password_hash" json:"-"`
	CreatedAt         time.Time `gorm:"column:created_at;default:now()" json:"created_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

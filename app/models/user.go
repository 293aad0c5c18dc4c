package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a dashboard customer. Users own zero or more orders.
type User struct {
	gorm.Model
	Name            string     `gorm:"size:255;not null"            json:"name"`
	Email           string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`

	Orders []Order `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`

	// OrdersCount is filled by listing queries via subquery, never stored.
	OrdersCount int64 `gorm:"-:migration;->" json:"orders_count"`
}

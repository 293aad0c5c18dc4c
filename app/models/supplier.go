package models

import "gorm.io/gorm"

// SupplierStatus is the lifecycle state of a supplier account.
type SupplierStatus string

const (
	SupplierActive   SupplierStatus = "active"
	SupplierInactive SupplierStatus = "inactive"
)

// Supplier is a vendor that owns zero or more products.
type Supplier struct {
	gorm.Model
	Name          string         `gorm:"size:255;not null"             json:"name"`
	Email         string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone         string         `gorm:"size:50"                       json:"phone"`
	Address       string         `gorm:"size:500"                      json:"address"`
	ContactPerson string         `gorm:"size:255"                      json:"contact_person"`
	Status        SupplierStatus `gorm:"size:20;not null;default:active;index" json:"status"`

	Products []Product `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"products,omitempty"`

	// ProductsCount is filled by listing queries via subquery, never stored.
	ProductsCount int64 `gorm:"-:migration;->" json:"products_count"`
}

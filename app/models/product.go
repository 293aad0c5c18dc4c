package models

import "gorm.io/gorm"

// ProductStatus is the catalogue state of a product.
type ProductStatus string

const (
	ProductActive       ProductStatus = "active"
	ProductInactive     ProductStatus = "inactive"
	ProductDiscontinued ProductStatus = "discontinued"
)

// LowStockThreshold is the stock level below which a product counts as
// low stock on the dashboard. A quantity of exactly zero is reported as
// out of stock instead.
const LowStockThreshold = 10

// Product represents a product in the catalogue, always owned by a supplier.
type Product struct {
	gorm.Model
	Name          string        `gorm:"size:255;not null;index"       json:"name"`
	SKU           string        `gorm:"uniqueIndex;size:100;not null" json:"sku"`
	Description   string        `gorm:"type:text"                     json:"description"`
	Price         float64       `gorm:"not null;default:0"            json:"price"`
	StockQuantity int           `gorm:"not null;default:0;index"      json:"stock_quantity"`
	Category      string        `gorm:"size:100;not null"             json:"category"`
	Status        ProductStatus `gorm:"size:20;not null;default:active" json:"status"`
	SupplierID    uint          `gorm:"not null;index"                json:"supplier_id"`

	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// OutOfStock reports whether the product has no stock at all.
func (p Product) OutOfStock() bool {
	return p.StockQuantity == 0
}

// LowStock reports whether stock is positive but below the dashboard
// threshold. Out-of-stock products are not low stock.
func (p Product) LowStock() bool {
	return p.StockQuantity > 0 && p.StockQuantity < LowStockThreshold
}

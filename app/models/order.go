package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []OrderStatus{
	OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled,
}

// Shipped reports whether the status implies the order left the warehouse,
// i.e. whether shipped_at must be set.
func (s OrderStatus) Shipped() bool {
	return s == OrderShipped || s == OrderDelivered
}

// Order is a customer order. TotalAmount always equals the sum of the line
// totals of its items once the order has been finalised by the seeder.
type Order struct {
	gorm.Model
	OrderNumber string      `gorm:"uniqueIndex;size:20;not null" json:"order_number"`
	UserID      uint        `gorm:"not null;index"               json:"user_id"`
	TotalAmount float64     `gorm:"not null;default:0"           json:"total_amount"`
	Status      OrderStatus `gorm:"size:20;not null;default:pending;index" json:"status"`
	Notes       string      `gorm:"type:text"                    json:"notes"`
	ShippedAt   *time.Time  `json:"shipped_at"`

	User       *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items,omitempty"`

	// OrderItemsCount is filled by listing queries via subquery, never stored.
	OrderItemsCount int64 `gorm:"-:migration;->" json:"order_items_count"`
}

// ItemsTotal sums the line totals of the loaded items.
func (o Order) ItemsTotal() float64 {
	var sum float64
	for _, item := range o.OrderItems {
		sum += item.TotalPrice
	}
	return sum
}

// OrderItem is one line of an order. UnitPrice is a snapshot of the product
// price at order time, not a live reference.
type OrderItem struct {
	gorm.Model
	OrderID    uint    `gorm:"not null;index" json:"order_id"`
	ProductID  uint    `gorm:"not null;index" json:"product_id"`
	Quantity   int     `gorm:"not null"       json:"quantity"`
	UnitPrice  float64 `gorm:"not null"       json:"unit_price"`
	TotalPrice float64 `gorm:"not null"       json:"total_price"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

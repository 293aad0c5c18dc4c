package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductStockHelpers(t *testing.T) {
	cases := []struct {
		name       string
		stock      int
		outOfStock bool
		lowStock   bool
	}{
		{"empty shelf", 0, true, false},
		{"one left", 1, false, true},
		{"just under threshold", LowStockThreshold - 1, false, true},
		{"at threshold", LowStockThreshold, false, false},
		{"well stocked", 500, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Product{StockQuantity: tc.stock}
			assert.Equal(t, tc.outOfStock, p.OutOfStock())
			assert.Equal(t, tc.lowStock, p.LowStock())
		})
	}
}

func TestOrderStatusShipped(t *testing.T) {
	shipped := map[OrderStatus]bool{
		OrderPending:    false,
		OrderProcessing: false,
		OrderShipped:    true,
		OrderDelivered:  true,
		OrderCancelled:  false,
	}
	for _, status := range OrderStatuses {
		assert.Equal(t, shipped[status], status.Shipped(), "status %s", status)
	}
}

func TestOrderItemsTotal(t *testing.T) {
	o := Order{OrderItems: []OrderItem{
		{Quantity: 2, UnitPrice: 10.00, TotalPrice: 20.00},
		{Quantity: 1, UnitPrice: 5.00, TotalPrice: 5.00},
		{Quantity: 3, UnitPrice: 0.33, TotalPrice: 0.99},
	}}
	assert.InDelta(t, 25.99, o.ItemsTotal(), 0.001)

	assert.Zero(t, Order{}.ItemsTotal())
}

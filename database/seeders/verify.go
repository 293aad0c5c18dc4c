package seeders

import (
	"errors"
	"fmt"
	"math"

	"github.com/shashiranjanraj/opsdash/app/models"
	"gorm.io/gorm"
)

// ErrInvariant is returned when the generated dataset violates one of the
// consistency rules the dashboard relies on.
var ErrInvariant = errors.New("seeders: dataset invariant violated")

// centsTolerance absorbs float rounding when comparing money.
const centsTolerance = 0.01

// CheckInvariants validates the whole dataset after a run:
//
//   - every order's total_amount equals the sum of its items' line totals
//   - shipped_at is set exactly when the status is shipped or delivered
//   - every line total equals quantity × unit price
//   - no record references a missing parent
//   - SKUs, order numbers and emails are unique across the run
//
// The first violation found is reported with the entity that broke it.
func CheckInvariants(db *gorm.DB) error {
	if err := checkOrderTotals(db); err != nil {
		return err
	}
	if err := checkShippedAt(db); err != nil {
		return err
	}
	if err := checkReferences(db); err != nil {
		return err
	}
	return checkUniqueness(db)
}

func checkOrderTotals(db *gorm.DB) error {
	var orders []models.Order
	if err := db.Preload("OrderItems").Find(&orders).Error; err != nil {
		return err
	}

	for _, o := range orders {
		if math.Abs(o.TotalAmount-o.ItemsTotal()) > centsTolerance {
			return fmt.Errorf("order %s: total_amount %.2f != items sum %.2f: %w",
				o.OrderNumber, o.TotalAmount, o.ItemsTotal(), ErrInvariant)
		}

		for _, item := range o.OrderItems {
			want := float64(item.Quantity) * item.UnitPrice
			if math.Abs(item.TotalPrice-want) > centsTolerance {
				return fmt.Errorf("order %s item %d: total_price %.2f != %d × %.2f: %w",
					o.OrderNumber, item.ID, item.TotalPrice, item.Quantity, item.UnitPrice, ErrInvariant)
			}
		}
	}
	return nil
}

func checkShippedAt(db *gorm.DB) error {
	var bad int64
	err := db.Model(&models.Order{}).
		Where("(status IN ? AND shipped_at IS NULL) OR (status NOT IN ? AND shipped_at IS NOT NULL)",
			[]models.OrderStatus{models.OrderShipped, models.OrderDelivered},
			[]models.OrderStatus{models.OrderShipped, models.OrderDelivered}).
		Count(&bad).Error
	if err != nil {
		return err
	}
	if bad > 0 {
		return fmt.Errorf("%d orders with shipped_at inconsistent with status: %w", bad, ErrInvariant)
	}
	return nil
}

func checkReferences(db *gorm.DB) error {
	checks := []struct {
		what  string
		query string
	}{
		{"products with missing supplier",
			"SELECT COUNT(*) FROM products p LEFT JOIN suppliers s ON s.id = p.supplier_id WHERE s.id IS NULL AND p.deleted_at IS NULL"},
		{"orders with missing user",
			"SELECT COUNT(*) FROM orders o LEFT JOIN users u ON u.id = o.user_id WHERE u.id IS NULL AND o.deleted_at IS NULL"},
		{"order items with missing order",
			"SELECT COUNT(*) FROM order_items i LEFT JOIN orders o ON o.id = i.order_id WHERE o.id IS NULL AND i.deleted_at IS NULL"},
		{"order items with missing product",
			"SELECT COUNT(*) FROM order_items i LEFT JOIN products p ON p.id = i.product_id WHERE p.id IS NULL AND i.deleted_at IS NULL"},
	}

	for _, c := range checks {
		var orphans int64
		if err := db.Raw(c.query).Scan(&orphans).Error; err != nil {
			return err
		}
		if orphans > 0 {
			return fmt.Errorf("%d %s: %w", orphans, c.what, ErrInvariant)
		}
	}
	return nil
}

func checkUniqueness(db *gorm.DB) error {
	checks := []struct {
		what  string
		table string
		col   string
	}{
		{"product SKUs", "products", "sku"},
		{"order numbers", "orders", "order_number"},
		{"user emails", "users", "email"},
		{"supplier emails", "suppliers", "email"},
	}

	for _, c := range checks {
		var dupes int64
		query := fmt.Sprintf(
			"SELECT COUNT(*) FROM (SELECT %s FROM %s WHERE deleted_at IS NULL GROUP BY %s HAVING COUNT(*) > 1) d",
			c.col, c.table, c.col)
		if err := db.Raw(query).Scan(&dupes).Error; err != nil {
			return err
		}
		if dupes > 0 {
			return fmt.Errorf("%d duplicated %s: %w", dupes, c.what, ErrInvariant)
		}
	}
	return nil
}

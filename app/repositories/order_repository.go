package repositories

import (
	"github.com/shashiranjanraj/opsdash/app/models"
	"github.com/shashiranjanraj/opsdash/pkg/orm"
)

// itemsCountSelect annotates each order row with its line-item count.
const itemsCountSelect = "orders.*, " +
	"(SELECT COUNT(*) FROM order_items WHERE order_items.order_id = orders.id AND order_items.deleted_at IS NULL) AS order_items_count"

// OrderRepository handles database operations for Order.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// FindByID looks up an order with its user and items loaded.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	err := orm.DB().
		Model(&models.Order{}).
		Preload("User").
		Preload("OrderItems").
		Where("id = ?", id).
		First(&order)
	return order, err
}

// All returns a page of orders with user and items loaded, newest first,
// each annotated with its item count.
func (r *OrderRepository) All(page, limit int) ([]models.Order, orm.Pagination, error) {
	var orders []models.Order
	pagination, err := orm.DB().
		Model(&models.Order{}).
		Select(itemsCountSelect).
		Preload("User").
		Preload("OrderItems").
		Order("created_at DESC, id DESC").
		GetWithPagination(&orders, page, limit)
	return orders, pagination, err
}

// Recent returns the latest limit orders with user and items loaded.
// Newest first; created_at ties break by id descending so the most recently
// inserted order still sorts first and the listing stays deterministic.
func (r *OrderRepository) Recent(limit int) ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().
		Model(&models.Order{}).
		Preload("User").
		Preload("OrderItems").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Get(&orders)
	return orders, err
}

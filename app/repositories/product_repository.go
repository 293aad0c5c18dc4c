package repositories

import (
	"github.com/shashiranjanraj/opsdash/app/models"
	"github.com/shashiranjanraj/opsdash/pkg/orm"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).Where("id = ?", id).First(&product)
	return product, err
}

// Create persists a new product record.
func (r *ProductRepository) Create(product *models.Product) error {
	return orm.DB().Create(product)
}

// All returns a page of products with their supplier loaded, newest first.
func (r *ProductRepository) All(page, limit int) ([]models.Product, orm.Pagination, error) {
	var products []models.Product
	pagination, err := orm.DB().
		Model(&models.Product{}).
		Preload("Supplier").
		Order("created_at DESC, id DESC").
		GetWithPagination(&products, page, limit)
	return products, pagination, err
}

// LowStock returns up to limit products under the low-stock threshold with
// their supplier loaded, lowest stock first; ties break on id ascending so
// the order is deterministic.
func (r *ProductRepository) LowStock(limit int) ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().
		Model(&models.Product{}).
		Preload("Supplier").
		Where("stock_quantity < ?", models.LowStockThreshold).
		Order("stock_quantity ASC, id ASC").
		Limit(limit).
		Get(&products)
	return products, err
}

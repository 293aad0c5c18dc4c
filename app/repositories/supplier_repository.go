package repositories

import (
	"github.com/shashiranjanraj/opsdash/app/models"
	"github.com/shashiranjanraj/opsdash/pkg/orm"
)

// productsCountSelect annotates each supplier row with its product count.
const productsCountSelect = "suppliers.*, " +
	"(SELECT COUNT(*) FROM products WHERE products.supplier_id = suppliers.id AND products.deleted_at IS NULL) AS products_count"

// SupplierRepository handles database operations for Supplier.
type SupplierRepository struct{}

func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{}
}

// FindByID looks up a supplier by primary key.
func (r *SupplierRepository) FindByID(id uint) (models.Supplier, error) {
	var supplier models.Supplier
	err := orm.DB().Model(&models.Supplier{}).Where("id = ?", id).First(&supplier)
	return supplier, err
}

// Create persists a new supplier record.
func (r *SupplierRepository) Create(supplier *models.Supplier) error {
	return orm.DB().Create(supplier)
}

// All returns a page of suppliers, newest first, each annotated with its
// product count.
func (r *SupplierRepository) All(page, limit int) ([]models.Supplier, orm.Pagination, error) {
	var suppliers []models.Supplier
	pagination, err := orm.DB().
		Model(&models.Supplier{}).
		Select(productsCountSelect).
		Order("created_at DESC, id DESC").
		GetWithPagination(&suppliers, page, limit)
	return suppliers, pagination, err
}

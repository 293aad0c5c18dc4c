package migrations

import (
	"github.com/shashiranjanraj/opsdash/app/models"
	"github.com/shashiranjanraj/opsdash/pkg/migration"
	"gorm.io/gorm"
)

// Registration order is dependency order: parents before children.
func init() {
	migration.Register("20240101000001_create_users_table", &CreateUsersTable{})
	migration.Register("20240101000002_create_suppliers_table", &CreateSuppliersTable{})
	migration.Register("20240101000003_create_products_table", &CreateProductsTable{})
	migration.Register("20240101000004_create_orders_table", &CreateOrdersTable{})
	migration.Register("20240101000005_create_order_items_table", &CreateOrderItemsTable{})
}

// -------- 0001: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0002: suppliers --------

type CreateSuppliersTable struct{}

func (m *CreateSuppliersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Supplier{})
}

func (m *CreateSuppliersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("suppliers")
}

// -------- 0003: products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0004: orders --------

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("orders")
}

// -------- 0005: order items --------

type CreateOrderItemsTable struct{}

func (m *CreateOrderItemsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.OrderItem{})
}

func (m *CreateOrderItemsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("order_items")
}

package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/opsdash/app/repositories"
)

// UserController lists customers on the dashboard.
type UserController struct {
	users *repositories.UserRepository
}

func NewUserController() *UserController {
	return &UserController{users: repositories.NewUserRepository()}
}

func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	listPage(w, r, c.users.All)
}

// SupplierController lists suppliers on the dashboard.
type SupplierController struct {
	suppliers *repositories.SupplierRepository
}

func NewSupplierController() *SupplierController {
	return &SupplierController{suppliers: repositories.NewSupplierRepository()}
}

func (c *SupplierController) Index(w http.ResponseWriter, r *http.Request) {
	listPage(w, r, c.suppliers.All)
}

// ProductController lists products with their supplier.
type ProductController struct {
	products *repositories.ProductRepository
}

func NewProductController() *ProductController {
	return &ProductController{products: repositories.NewProductRepository()}
}

func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	listPage(w, r, c.products.All)
}

// OrderController lists orders with their user and items.
type OrderController struct {
	orders *repositories.OrderRepository
}

func NewOrderController() *OrderController {
	return &OrderController{orders: repositories.NewOrderRepository()}
}

func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	listPage(w, r, c.orders.All)
}

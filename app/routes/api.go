package routes

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/opsdash/app/controllers"
	"github.com/shashiranjanraj/opsdash/pkg/metrics"
	"github.com/shashiranjanraj/opsdash/pkg/response"
	"github.com/shashiranjanraj/opsdash/pkg/router"
)

// RegisterAPI mounts every dashboard route on r.
func RegisterAPI(r *router.Router) {
	dashboardController := controllers.NewDashboardController()
	userController := controllers.NewUserController()
	supplierController := controllers.NewSupplierController()
	productController := controllers.NewProductController()
	orderController := controllers.NewOrderController()

	r.Get("/health-check", "health-check", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	r.Get("/metrics", "metrics", metrics.Handler())

	dashboard := r.Group("/dashboard")
	dashboard.Get("", "dashboard", dashboardController.Index)
	dashboard.Get("/users", "dashboard.users", userController.Index)
	dashboard.Get("/suppliers", "dashboard.suppliers", supplierController.Index)
	dashboard.Get("/products", "dashboard.products", productController.Index)
	dashboard.Get("/orders", "dashboard.orders", orderController.Index)
}

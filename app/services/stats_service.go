package services

import (
	"time"

	"github.com/shashiranjanraj/opsdash/app/models"
	"github.com/shashiranjanraj/opsdash/app/repositories"
	"github.com/shashiranjanraj/opsdash/config"
	"github.com/shashiranjanraj/opsdash/pkg/cache"
	"github.com/shashiranjanraj/opsdash/pkg/metrics"
	"github.com/shashiranjanraj/opsdash/pkg/orm"
)

// StatsCacheKey is the Redis key the overview stats are cached under.
const StatsCacheKey = "dashboard:stats"

// Stats is the dashboard overview, keyed the way the frontend reads it.
// Revenue excludes cancelled orders.
type Stats struct {
	TotalUsers       int64   `json:"total_users"`
	TotalSuppliers   int64   `json:"total_suppliers"`
	TotalProducts    int64   `json:"total_products"`
	TotalOrders      int64   `json:"total_orders"`
	TotalRevenue     float64 `json:"total_revenue"`
	LowStockProducts int64   `json:"low_stock_products"`
	PendingOrders    int64   `json:"pending_orders"`
	ActiveSuppliers  int64   `json:"active_suppliers"`
}

// Dashboard is the full payload of the main dashboard page: the overview
// stats plus recent activity.
type Dashboard struct {
	Stats            Stats            `json:"stats"`
	RecentOrders     []models.Order   `json:"recent_orders"`
	LowStockProducts []models.Product `json:"low_stock_products"`
}

// recentLimit caps the recent-activity lists on the dashboard.
const recentLimit = 5

// StatsService computes read-only projections over the generated data.
type StatsService struct {
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
}

func NewStatsService() *StatsService {
	return &StatsService{
		orders:   repositories.NewOrderRepository(),
		products: repositories.NewProductRepository(),
	}
}

// Overview returns the dashboard counters, served from cache when fresh.
func (s *StatsService) Overview() (Stats, error) {
	var stats Stats
	if cache.Get(StatsCacheKey, &stats) {
		metrics.CacheHits.WithLabelValues(StatsCacheKey).Inc()
		return stats, nil
	}
	metrics.CacheMisses.WithLabelValues(StatsCacheKey).Inc()

	stats, err := s.computeOverview()
	if err != nil {
		return Stats{}, err
	}

	ttl := time.Duration(config.CacheTTLSeconds()) * time.Second
	cache.Set(StatsCacheKey, stats, ttl)
	return stats, nil
}

func (s *StatsService) computeOverview() (Stats, error) {
	var stats Stats

	counts := []struct {
		dest  *int64
		query *orm.Query
	}{
		{&stats.TotalUsers, orm.DB().Model(&models.User{})},
		{&stats.TotalSuppliers, orm.DB().Model(&models.Supplier{})},
		{&stats.TotalProducts, orm.DB().Model(&models.Product{})},
		{&stats.TotalOrders, orm.DB().Model(&models.Order{})},
		{&stats.LowStockProducts, orm.DB().Model(&models.Product{}).
			Where("stock_quantity < ?", models.LowStockThreshold)},
		{&stats.PendingOrders, orm.DB().Model(&models.Order{}).
			Where("status = ?", models.OrderPending)},
		{&stats.ActiveSuppliers, orm.DB().Model(&models.Supplier{}).
			Where("status = ?", models.SupplierActive)},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dest); err != nil {
			return Stats{}, err
		}
	}

	err := orm.DB().Model(&models.Order{}).
		Where("status != ?", models.OrderCancelled).
		Sum("total_amount", &stats.TotalRevenue)
	if err != nil {
		return Stats{}, err
	}

	return stats, nil
}

// RecentOrders returns the five most recent orders with user and items.
func (s *StatsService) RecentOrders() ([]models.Order, error) {
	return s.orders.Recent(recentLimit)
}

// LowStockProducts returns the five lowest-stock products with supplier.
func (s *StatsService) LowStockProducts() ([]models.Product, error) {
	return s.products.LowStock(recentLimit)
}

// Dashboard assembles the full dashboard payload.
func (s *StatsService) Dashboard() (Dashboard, error) {
	stats, err := s.Overview()
	if err != nil {
		return Dashboard{}, err
	}

	recent, err := s.RecentOrders()
	if err != nil {
		return Dashboard{}, err
	}

	lowStock, err := s.LowStockProducts()
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		Stats:            stats,
		RecentOrders:     recent,
		LowStockProducts: lowStock,
	}, nil
}

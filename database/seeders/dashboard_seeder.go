package seeders

import (
	"errors"
	"fmt"
	"time"

	"github.com/shashiranjanraj/opsdash/app/models"
	"github.com/shashiranjanraj/opsdash/app/services"
	"github.com/shashiranjanraj/opsdash/config"
	"github.com/shashiranjanraj/opsdash/database/factories"
	"github.com/shashiranjanraj/opsdash/pkg/cache"
	"github.com/shashiranjanraj/opsdash/pkg/fake"
	"github.com/shashiranjanraj/opsdash/pkg/logger"
	"github.com/shashiranjanraj/opsdash/pkg/metrics"
	"gorm.io/gorm"
)

// ErrConfig is returned for invalid seeder configuration: negative counts,
// or a run that needs order items while the product pool is empty.
var ErrConfig = errors.New("seeders: invalid configuration")

func init() {
	Register("dashboard", func(db *gorm.DB) error {
		s := NewDashboardSeeder(db, fake.NewSource(0))
		return s.Run(DefaultDashboardConfig())
	})
}

// DashboardConfig sizes one generation run.
type DashboardConfig struct {
	Suppliers int
	Users     int
}

// DefaultDashboardConfig reads the run size from config (15 suppliers and
// 25 users unless overridden in .env).
func DefaultDashboardConfig() DashboardConfig {
	return DashboardConfig{
		Suppliers: config.SeedSuppliers(),
		Users:     config.SeedUsers(),
	}
}

// DashboardSeeder builds a consistent object graph of suppliers, products,
// users, orders and order items in strict dependency order. Every order's
// total_amount equals the sum of its items' line totals when Run returns.
type DashboardSeeder struct {
	db      *gorm.DB
	vals    fake.Values
	factory *factories.Factory
}

// NewDashboardSeeder wires a seeder to db, drawing values from vals.
// Pass a fixed-seed source for reproducible runs.
func NewDashboardSeeder(db *gorm.DB, vals fake.Values) *DashboardSeeder {
	return &DashboardSeeder{
		db:      db,
		vals:    vals,
		factory: factories.New(vals),
	}
}

// Run executes one full generation pass. Any error is fatal to the run:
// partial rows may remain in the database but are logged, never silently
// kept as a consistent-looking dataset.
func (s *DashboardSeeder) Run(cfg DashboardConfig) (err error) {
	start := time.Now()
	defer func() {
		status := "success"
		if err != nil {
			status = "failed"
			logger.Error("seed: aborted, dataset may be partial", "error", err.Error())
		}
		metrics.RecordSeedRun(status, start)
	}()

	if cfg.Suppliers < 0 || cfg.Users < 0 {
		return fmt.Errorf("supplier/user counts must be >= 0 (got %d/%d): %w",
			cfg.Suppliers, cfg.Users, ErrConfig)
	}

	suppliers, err := s.seedSuppliers(cfg.Suppliers)
	if err != nil {
		return fmt.Errorf("seed suppliers: %w", err)
	}

	products, err := s.seedProducts(suppliers)
	if err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	users, err := s.seedUsers(cfg.Users)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	if err := s.seedOrders(users, products); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}

	if err := CheckInvariants(s.db); err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	// Aggregates are stale now; drop them so the dashboard recomputes.
	cache.Forget(services.StatsCacheKey)

	logger.Info("seed: done",
		"suppliers", len(suppliers),
		"products", len(products),
		"users", len(users),
		"duration", time.Since(start).String(),
	)
	return nil
}

func (s *DashboardSeeder) seedSuppliers(n int) ([]*models.Supplier, error) {
	suppliers := make([]*models.Supplier, 0, n)
	for i := 0; i < n; i++ {
		sup, err := s.factory.Supplier()
		if err != nil {
			return nil, err
		}
		if err := s.db.Create(sup).Error; err != nil {
			return nil, err
		}
		suppliers = append(suppliers, sup)
	}
	logger.Info("seed: suppliers created", "count", len(suppliers))
	return suppliers, nil
}

// seedProducts attaches 3-8 products to every supplier and returns the full
// product pool orders sample from.
func (s *DashboardSeeder) seedProducts(suppliers []*models.Supplier) ([]*models.Product, error) {
	var pool []*models.Product
	for _, sup := range suppliers {
		n := s.vals.IntBetween(3, 8)
		for i := 0; i < n; i++ {
			p, err := s.factory.Product(sup.ID)
			if err != nil {
				return nil, err
			}
			if err := s.db.Create(p).Error; err != nil {
				return nil, err
			}
			pool = append(pool, p)
		}
	}
	logger.Info("seed: products created", "count", len(pool))
	return pool, nil
}

func (s *DashboardSeeder) seedUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		u, err := s.factory.User()
		if err != nil {
			return nil, err
		}
		if err := s.db.Create(u).Error; err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	logger.Info("seed: users created", "count", len(users))
	return users, nil
}

// seedOrders gives each user 0-5 orders (some users never ordered). Each
// order gets 1-5 distinct products from the pool; the order row is created
// with total 0 and receives its real total in a single corrective update
// after all its items exist. That finalisation is the only post-creation
// mutation in the whole model.
func (s *DashboardSeeder) seedOrders(users []*models.User, pool []*models.Product) error {
	var orders, items int
	for _, u := range users {
		orderCount := s.vals.IntBetween(0, 5)
		if orderCount > 0 && len(pool) == 0 {
			return fmt.Errorf("user %d needs orders but the product pool is empty "+
				"(seed at least one supplier): %w", u.ID, ErrConfig)
		}

		for i := 0; i < orderCount; i++ {
			order, err := s.factory.Order(u.ID)
			if err != nil {
				return err
			}
			if err := s.db.Create(order).Error; err != nil {
				return err
			}

			itemCount := s.vals.IntBetween(1, 5)
			if itemCount > len(pool) {
				itemCount = len(pool)
			}

			var total float64
			// Distinct products per order: sample without replacement.
			for _, idx := range s.vals.Perm(len(pool))[:itemCount] {
				product := pool[idx]
				item, err := s.factory.OrderItem(order.ID, product, s.vals.IntBetween(1, 3))
				if err != nil {
					return err
				}
				if err := s.db.Create(item).Error; err != nil {
					return err
				}
				total += item.TotalPrice
				items++
			}

			if err := s.finalizeTotal(order.ID, total); err != nil {
				return err
			}
			orders++
		}
	}
	logger.Info("seed: orders created", "orders", orders, "items", items)
	return nil
}

// finalizeTotal writes the authoritative total once an order's item set is
// complete.
func (s *DashboardSeeder) finalizeTotal(orderID uint, total float64) error {
	return s.db.Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("total_amount", fake.Round2(total)).Error
}

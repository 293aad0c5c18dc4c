package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/opsdash/app/models"
	"github.com/shashiranjanraj/opsdash/app/services"
	"github.com/shashiranjanraj/opsdash/pkg/database"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Supplier{}, &models.Product{},
		&models.Order{}, &models.OrderItem{},
	))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
	return db
}

func seedFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()

	users := []models.User{
		{Name: "Alice Park", Email: "alice@example.com"},
		{Name: "Bob Lane", Email: "bob@example.com"},
	}
	for i := range users {
		require.NoError(t, db.Create(&users[i]).Error)
	}

	suppliers := []models.Supplier{
		{Name: "Acme Ltd", Email: "acme@example.com", Status: models.SupplierActive},
		{Name: "Globex Inc", Email: "globex@example.com", Status: models.SupplierInactive},
	}
	for i := range suppliers {
		require.NoError(t, db.Create(&suppliers[i]).Error)
	}

	products := []models.Product{
		{SupplierID: suppliers[0].ID, Name: "Widget", SKU: "AA100AA", Price: 10, StockQuantity: 0, Status: models.ProductActive},
		{SupplierID: suppliers[0].ID, Name: "Gadget", SKU: "AA200AA", Price: 20, StockQuantity: 4, Status: models.ProductActive},
		{SupplierID: suppliers[1].ID, Name: "Gizmo", SKU: "AA300AA", Price: 30, StockQuantity: 500, Status: models.ProductActive},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}

	now := time.Now()
	orders := []models.Order{
		{UserID: users[0].ID, OrderNumber: "ORD-AA100AA", Status: models.OrderPending, TotalAmount: 100},
		{UserID: users[0].ID, OrderNumber: "ORD-AA200AA", Status: models.OrderDelivered, TotalAmount: 250, ShippedAt: &now},
		{UserID: users[1].ID, OrderNumber: "ORD-AA300AA", Status: models.OrderCancelled, TotalAmount: 999},
	}
	for i := range orders {
		require.NoError(t, db.Create(&orders[i]).Error)
	}
}

func TestOverview_Counters(t *testing.T) {
	db := setupDB(t)
	seedFixtures(t, db)

	stats, err := services.NewStatsService().Overview()
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalUsers)
	assert.EqualValues(t, 2, stats.TotalSuppliers)
	assert.EqualValues(t, 3, stats.TotalProducts)
	assert.EqualValues(t, 3, stats.TotalOrders)
	assert.EqualValues(t, 1, stats.PendingOrders)
	assert.EqualValues(t, 1, stats.ActiveSuppliers)
	// Both the empty and the nearly-empty shelf count as low stock.
	assert.EqualValues(t, 2, stats.LowStockProducts)
	// The cancelled order's 999 never reaches revenue.
	assert.InDelta(t, 350, stats.TotalRevenue, 0.001)
}

func TestOverview_EmptyDatabase(t *testing.T) {
	setupDB(t)

	stats, err := services.NewStatsService().Overview()
	require.NoError(t, err)

	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.TotalRevenue, "revenue over no orders is 0, not NULL")
}

func TestRecentOrders_NewestFirst(t *testing.T) {
	db := setupDB(t)
	seedFixtures(t, db)

	user := models.User{Name: "Cora Diaz", Email: "cora@example.com"}
	require.NoError(t, db.Create(&user).Error)

	// Six more orders on top of the three fixtures: only the newest five
	// come back.
	base := time.Now().Add(time.Hour)
	for i := 0; i < 6; i++ {
		o := models.Order{
			UserID:      user.ID,
			OrderNumber: fmt.Sprintf("ORD-RC%d00RC", i),
			Status:      models.OrderProcessing,
			TotalAmount: 10,
		}
		require.NoError(t, db.Create(&o).Error)
		require.NoError(t, db.Model(&o).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	recent, err := services.NewStatsService().RecentOrders()
	require.NoError(t, err)
	require.Len(t, recent, 5)

	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].CreatedAt.After(recent[i-1].CreatedAt),
			"orders out of recency order at %d", i)
	}
	assert.Equal(t, "ORD-RC500RC", recent[0].OrderNumber)
	require.NotNil(t, recent[0].User, "user association not loaded")
	assert.Equal(t, "Cora Diaz", recent[0].User.Name)
}

func TestLowStockProducts_AscendingByStock(t *testing.T) {
	db := setupDB(t)
	seedFixtures(t, db)

	low, err := services.NewStatsService().LowStockProducts()
	require.NoError(t, err)
	require.Len(t, low, 2, "only products under the threshold qualify")

	assert.Equal(t, "Widget", low[0].Name, "emptiest shelf first")
	assert.Equal(t, "Gadget", low[1].Name)
	require.NotNil(t, low[0].Supplier, "supplier association not loaded")
	assert.Equal(t, "Acme Ltd", low[0].Supplier.Name)
}

func TestDashboard_AssemblesAllSections(t *testing.T) {
	db := setupDB(t)
	seedFixtures(t, db)

	dash, err := services.NewStatsService().Dashboard()
	require.NoError(t, err)

	assert.EqualValues(t, 3, dash.Stats.TotalOrders)
	assert.Len(t, dash.RecentOrders, 3)
	assert.Len(t, dash.LowStockProducts, 2)
}
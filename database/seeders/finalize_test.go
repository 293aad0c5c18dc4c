package seeders

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/opsdash/app/models"
	"github.com/shashiranjanraj/opsdash/pkg/fake"
)

func TestFinalizeTotal_WritesSumOfLines(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Supplier{}, &models.Product{},
		&models.Order{}, &models.OrderItem{},
	))

	user := models.User{Name: "Grace Hopper", Email: "grace@example.com"}
	require.NoError(t, db.Create(&user).Error)

	// Orders start at zero and only get their real total once every line
	// exists.
	order := models.Order{UserID: user.ID, OrderNumber: "ORD-ZZ999ZZ", Status: models.OrderPending}
	require.NoError(t, db.Create(&order).Error)

	supplier := models.Supplier{Name: "North Supply", Email: "north@example.com", Status: models.SupplierActive}
	require.NoError(t, db.Create(&supplier).Error)

	lines := []struct {
		price float64
		qty   int
	}{
		{10.00, 2},
		{5.00, 1},
	}
	var total float64
	for i, l := range lines {
		product := models.Product{
			SupplierID: supplier.ID,
			Name:       fmt.Sprintf("Part %d", i),
			SKU:        fmt.Sprintf("QQ%d00QQ", i),
			Price:      l.price,
			Status:     models.ProductActive,
		}
		require.NoError(t, db.Create(&product).Error)

		line := float64(l.qty) * l.price
		require.NoError(t, db.Create(&models.OrderItem{
			OrderID:    order.ID,
			ProductID:  product.ID,
			Quantity:   l.qty,
			UnitPrice:  l.price,
			TotalPrice: line,
		}).Error)
		total += line
	}

	s := NewDashboardSeeder(db, fake.NewSource(1))
	require.NoError(t, s.finalizeTotal(order.ID, total))

	var got models.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.InDelta(t, 25.00, got.TotalAmount, 0.001)

	assert.NoError(t, CheckInvariants(db))
}

package server_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/opsdash/app/models"
	"github.com/shashiranjanraj/opsdash/database/seeders"
	"github.com/shashiranjanraj/opsdash/internal/server"
	"github.com/shashiranjanraj/opsdash/pkg/database"
	"github.com/shashiranjanraj/opsdash/pkg/fake"
)

func setupServer(t *testing.T) *httptest.Server {
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

	ts := httptest.NewServer(server.NewRouter().Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string) (int, map[string]interface{}) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHealthCheck(t *testing.T) {
	ts := setupServer(t)

	status, body := getJSON(t, ts.URL+"/health-check")
	assert.Equal(t, http.StatusOK, status)

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ok", data["status"])
	assert.NotEmpty(t, data["timestamp"])
}

func TestDashboardEndpoint(t *testing.T) {
	ts := setupServer(t)

	s := seeders.NewDashboardSeeder(database.DB, fake.NewSource(11))
	require.NoError(t, s.Run(seeders.DashboardConfig{Suppliers: 3, Users: 8}))

	status, body := getJSON(t, ts.URL+"/dashboard")
	assert.Equal(t, http.StatusOK, status)

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)

	stats, ok := data["stats"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 8, stats["total_users"])
	assert.EqualValues(t, 3, stats["total_suppliers"])
	for _, key := range []string{
		"total_products", "total_orders", "total_revenue",
		"low_stock_products", "pending_orders", "active_suppliers",
	} {
		assert.Contains(t, stats, key)
	}

	assert.Contains(t, data, "recent_orders")
	assert.Contains(t, data, "low_stock_products")
}

func TestUserListing_Paginates(t *testing.T) {
	ts := setupServer(t)

	for i := 0; i < 20; i++ {
		u := models.User{
			Name:  fmt.Sprintf("User %02d", i),
			Email: fmt.Sprintf("user%02d@example.com", i),
		}
		require.NoError(t, database.DB.Create(&u).Error)
	}

	status, body := getJSON(t, ts.URL+"/dashboard/users")
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	assert.Len(t, items, 15)

	pagination := data["pagination"].(map[string]interface{})
	assert.EqualValues(t, 20, pagination["total"])
	assert.EqualValues(t, 2, pagination["last_page"])
	assert.Equal(t, true, pagination["has_more"])

	status, body = getJSON(t, ts.URL+"/dashboard/users?page=2")
	require.Equal(t, http.StatusOK, status)

	data = body["data"].(map[string]interface{})
	assert.Len(t, data["items"].([]interface{}), 5)
	assert.Equal(t, false, data["pagination"].(map[string]interface{})["has_more"])
}

func TestOrderListing_IncludesRelations(t *testing.T) {
	ts := setupServer(t)

	s := seeders.NewDashboardSeeder(database.DB, fake.NewSource(5))
	require.NoError(t, s.Run(seeders.DashboardConfig{Suppliers: 2, Users: 6}))

	status, body := getJSON(t, ts.URL+"/dashboard/orders")
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) == 0 {
		t.Skip("seed drew zero orders for every user")
	}

	first := items[0].(map[string]interface{})
	assert.Contains(t, first, "order_number")
	assert.Contains(t, first, "user")
	assert.Contains(t, first, "order_items")
	assert.Contains(t, first, "order_items_count")
}

func TestUnknownRouteReturns404(t *testing.T) {
	ts := setupServer(t)

	resp, err := http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCORSHeadersForBrowserClients(t *testing.T) {
	ts := setupServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/health-check", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://dashboard.example.com")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodGet)
	assert.Contains(t, resp.Header.Get("Access-Control-Expose-Headers"), "X-Request-ID")

	// Preflight short-circuits before any handler runs.
	pre, err := http.NewRequest(http.MethodOptions, ts.URL+"/dashboard", nil)
	require.NoError(t, err)
	pre.Header.Set("Origin", "https://dashboard.example.com")

	resp, err = http.DefaultClient.Do(pre)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRequestIDHeaderSet(t *testing.T) {
	ts := setupServer(t)

	resp, err := http.Get(ts.URL + "/health-check")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

package orm_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/opsdash/pkg/orm"
)

type widget struct {
	ID   uint `gorm:"primarykey"`
	Name string
}

func setupDB(t *testing.T, rows int) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}))

	for i := 1; i <= rows; i++ {
		require.NoError(t, db.Create(&widget{Name: fmt.Sprintf("widget-%02d", i)}).Error)
	}
	return db
}

func TestGetWithPagination_FullAndPartialPages(t *testing.T) {
	db := setupDB(t, 23)

	var page []widget
	meta, err := orm.Use(db).Model(&widget{}).Order("id ASC").
		GetWithPagination(&page, 1, 10)
	require.NoError(t, err)

	assert.Len(t, page, 10)
	assert.Equal(t, "widget-01", page[0].Name)
	assert.EqualValues(t, 23, meta.Total)
	assert.Equal(t, 3, meta.LastPage)
	assert.Equal(t, 1, meta.From)
	assert.Equal(t, 10, meta.To)
	assert.True(t, meta.HasMore)

	// Last page is short.
	meta, err = orm.Use(db).Model(&widget{}).Order("id ASC").
		GetWithPagination(&page, 3, 10)
	require.NoError(t, err)

	assert.Len(t, page, 3)
	assert.Equal(t, "widget-21", page[0].Name)
	assert.Equal(t, 21, meta.From)
	assert.Equal(t, 23, meta.To)
	assert.False(t, meta.HasMore)
}

func TestGetWithPagination_BeyondLastPage(t *testing.T) {
	db := setupDB(t, 5)

	var page []widget
	meta, err := orm.Use(db).Model(&widget{}).GetWithPagination(&page, 9, 10)
	require.NoError(t, err)

	assert.Empty(t, page)
	assert.EqualValues(t, 5, meta.Total)
	assert.Equal(t, 1, meta.LastPage)
	assert.Zero(t, meta.From)
	assert.Zero(t, meta.To)
	assert.False(t, meta.HasMore)
}

func TestGetWithPagination_ClampsBadInput(t *testing.T) {
	db := setupDB(t, 3)

	var page []widget
	meta, err := orm.Use(db).Model(&widget{}).GetWithPagination(&page, 0, -1)
	require.NoError(t, err)

	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, orm.DefaultPerPage, meta.PerPage)
	assert.Len(t, page, 3)
}

func TestGetWithPagination_EmptyTable(t *testing.T) {
	db := setupDB(t, 0)

	var page []widget
	meta, err := orm.Use(db).Model(&widget{}).GetWithPagination(&page, 1, 10)
	require.NoError(t, err)

	assert.Empty(t, page)
	assert.Zero(t, meta.Total)
	assert.Equal(t, 1, meta.LastPage, "an empty listing still has one page")
}

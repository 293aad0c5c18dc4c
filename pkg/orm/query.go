// Package orm is a thin, chainable wrapper over GORM with Laravel-flavoured
// pagination and read-through caching.
package orm

import (
	"time"

	"github.com/shashiranjanraj/opsdash/pkg/cache"
	"github.com/shashiranjanraj/opsdash/pkg/database"
	"gorm.io/gorm"
)

type Query struct {
	db *gorm.DB
}

// DB starts a query against the global connection.
func DB() *Query {
	return &Query{db: database.DB}
}

// Use starts a query against an explicit connection (tests, transactions).
func Use(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Select(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Select(query, args...)}
}

func (q *Query) Order(value interface{}) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Preload(relation string, args ...interface{}) *Query {
	return &Query{db: q.db.Preload(relation, args...)}
}

func (q *Query) Limit(n int) *Query {
	return &Query{db: q.db.Limit(n)}
}

func (q *Query) Get(dest interface{}) error {
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	return q.db.First(dest).Error
}

func (q *Query) Count(out *int64) error {
	return q.db.Count(out).Error
}

func (q *Query) Create(value interface{}) error {
	return q.db.Create(value).Error
}

// Sum scans SUM(column) over the current query into out.
// A query matching no rows yields 0, not NULL.
func (q *Query) Sum(column string, out *float64) error {
	return q.db.Select("COALESCE(SUM(" + column + "), 0)").Scan(out).Error
}

func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if cache.Get(key, dest) {
		return nil
	}

	err := q.db.Find(dest).Error
	if err != nil {
		return err
	}

	cache.Set(key, dest, ttl)
	return nil
}

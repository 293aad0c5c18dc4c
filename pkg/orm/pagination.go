package orm

import "gorm.io/gorm"

// Pagination carries page metadata alongside a page of results, shaped like
// Laravel's paginator JSON so frontends can render page controls directly.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	LastPage   int   `json:"last_page"`
	From       int   `json:"from"`
	To         int   `json:"to"`
	HasMore    bool  `json:"has_more"`
}

// DefaultPerPage matches the dashboard listing size.
const DefaultPerPage = 15

// GetWithPagination runs the query twice, once for the total count and once
// for the requested page, and fills dest with the page of rows.
// page is 1-based; page < 1 is clamped to 1, limit < 1 falls back to DefaultPerPage.
func (q *Query) GetWithPagination(dest interface{}, page, limit int) (Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPerPage
	}

	// Separate sessions so the COUNT doesn't pollute the page query's statement.
	var total int64
	if err := q.db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	offset := (page - 1) * limit
	if err := q.db.Session(&gorm.Session{}).Limit(limit).Offset(offset).Find(dest).Error; err != nil {
		return Pagination{}, err
	}

	p := Pagination{
		Page:    page,
		PerPage: limit,
		Total:   total,
	}

	p.LastPage = int((total + int64(limit) - 1) / int64(limit))
	if p.LastPage < 1 {
		p.LastPage = 1
	}

	if total > 0 && int64(offset) < total {
		p.From = offset + 1
		to := offset + limit
		if int64(to) > total {
			to = int(total)
		}
		p.To = to
	}
	p.HasMore = page < p.LastPage

	return p, nil
}

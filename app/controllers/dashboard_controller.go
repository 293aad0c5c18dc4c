package controllers

import (
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/opsdash/app/services"
	"github.com/shashiranjanraj/opsdash/pkg/logger"
	"github.com/shashiranjanraj/opsdash/pkg/orm"
	"github.com/shashiranjanraj/opsdash/pkg/response"
)

// pageParam reads the ?page= query parameter, defaulting to 1.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// DashboardController serves the main dashboard payload: overview stats
// plus recent orders and low-stock products.
type DashboardController struct {
	stats *services.StatsService
}

func NewDashboardController() *DashboardController {
	return &DashboardController{
		stats: services.NewStatsService(),
	}
}

func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	dashboard, err := c.stats.Dashboard()
	if err != nil {
		logger.WithCtx(r.Context()).Error("dashboard query failed", "error", err.Error())
		response.Error(w, http.StatusInternalServerError, "Could not load dashboard")
		return
	}

	response.Success(w, dashboard)
}

// listPage is the shared shape of every listing handler: fetch one page,
// translate errors, render the paginated envelope.
func listPage[T any](w http.ResponseWriter, r *http.Request,
	fetch func(page, limit int) ([]T, orm.Pagination, error)) {

	items, pagination, err := fetch(pageParam(r), orm.DefaultPerPage)
	if err != nil {
		logger.WithCtx(r.Context()).Error("listing query failed",
			"path", r.URL.Path, "error", err.Error())
		response.Error(w, http.StatusInternalServerError, "Could not load listing")
		return
	}

	response.Paginated(w, items, pagination)
}

package http

import (
	"net/http"
	"strings"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetStatistics(w http.ResponseWriter, r *http.Request)
	GetMonthly(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

func statisticsFromQuery(r *http.Request) dashboard.StatisticsRequest {
	q := r.URL.Query()
	return dashboard.StatisticsRequest{
		RangeRequest: rangeFromQuery(r),
		Month:        strings.TrimSpace(q.Get("month")),
		Year:         strings.TrimSpace(q.Get("year")),
	}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context(), statisticsFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetStatistics handles GET /dashboard/statistics
func (h *dashboardHandlerImpl) GetStatistics(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetStatistics(r.Context(), statisticsFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthly handles GET /dashboard/monthly
func (h *dashboardHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetMonthly(r.Context(), statisticsFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithTotal(w, result, len(result))
}

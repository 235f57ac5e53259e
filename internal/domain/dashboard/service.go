package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns summary, monthly and per-employee rollups computed concurrently
	GetDashboard(ctx context.Context, req StatisticsRequest) (*DashboardResponse, error)

	// GetStatistics returns the summary for a range, month or employee
	GetStatistics(ctx context.Context, req StatisticsRequest) (*StatisticsResponse, error)

	// GetMonthly returns the per-month sequence
	GetMonthly(ctx context.Context, req StatisticsRequest) ([]MonthlyRollup, error)
}

package employee

import (
	"context"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/dashboard"
)

type EmployeeService interface {
	// List returns the roster, optionally a single employee
	List(ctx context.Context, employeeID string) ([]EmployeeResponse, error)

	// Summary returns per-employee rollups for a range, including employees without rows
	Summary(ctx context.Context, req attendance.RangeRequest) ([]dashboard.EmployeeRollup, error)

	// History returns one employee's records for a range with its rollup
	History(ctx context.Context, employeeID string, req attendance.RangeRequest) (dashboard.EmployeeHistoryResponse, error)
}

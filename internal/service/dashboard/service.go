package dashboard

import (
	"context"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/employee"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewDashboardService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// records validates the request and loads the matching rows. An employee filter
// must name a known employee.
func (s *DashboardServiceImpl) records(ctx context.Context, req dashboard.StatisticsRequest) (attendance.Filter, []attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Filter{}, nil, err
	}
	filter := req.Filter()
	if filter.EmployeeID != "" {
		roster, err := s.employeeRepo.List(ctx, filter.EmployeeID)
		if err != nil {
			return attendance.Filter{}, nil, err
		}
		if len(roster) == 0 {
			return attendance.Filter{}, nil, attendance.ErrRecordNotFound
		}
	}
	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.Filter{}, nil, err
	}
	return filter, records, nil
}

// GetDashboard loads the range once, then builds the three views in parallel
// alongside the roster query.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, req dashboard.StatisticsRequest) (*dashboard.DashboardResponse, error) {
	filter, records, err := s.records(ctx, req)
	if err != nil {
		return nil, err
	}

	var (
		summary   dashboard.StatisticsSummary
		monthly   []dashboard.MonthlyRollup
		employees []dashboard.EmployeeRollup
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Summary
	g.Go(func() error {
		summary = Summarize(records)
		return nil
	})

	// 2. Monthly
	g.Go(func() error {
		monthly = ByMonth(records)
		return nil
	})

	// 3. Per employee (1 query: roster)
	g.Go(func() error {
		roster, err := s.employeeRepo.List(gCtx, filter.EmployeeID)
		if err != nil {
			return err
		}
		employees = SortedRollups(ByEmployee(records, roster))
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.DashboardResponse{
		Range:     dashboard.NewDateRange(filter),
		Summary:   summary,
		Monthly:   monthly,
		Employees: employees,
	}, nil
}

func (s *DashboardServiceImpl) GetStatistics(ctx context.Context, req dashboard.StatisticsRequest) (*dashboard.StatisticsResponse, error) {
	filter, records, err := s.records(ctx, req)
	if err != nil {
		return nil, err
	}
	return &dashboard.StatisticsResponse{
		Range:      dashboard.NewDateRange(filter),
		EmployeeID: filter.EmployeeID,
		Summary:    Summarize(records),
	}, nil
}

func (s *DashboardServiceImpl) GetMonthly(ctx context.Context, req dashboard.StatisticsRequest) ([]dashboard.MonthlyRollup, error) {
	_, records, err := s.records(ctx, req)
	if err != nil {
		return nil, err
	}
	return ByMonth(records), nil
}

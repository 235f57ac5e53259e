package employee

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/validator"
	dashboardservice "github.com/cmlabs-hris/attendance-dashboard-go/internal/service/dashboard"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, attendanceRepo attendance.AttendanceRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

func (s *EmployeeServiceImpl) List(ctx context.Context, employeeID string) ([]employee.EmployeeResponse, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID != "" && !validator.IsValidEmployeeID(employeeID) {
		return nil, validator.ValidationErrors{{Field: "employee_id", Message: "employee_id contains invalid characters"}}
	}

	emps, err := s.employeeRepo.List(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employeeID != "" && len(emps) == 0 {
		return nil, attendance.ErrRecordNotFound
	}
	return employee.NewEmployeeResponses(emps), nil
}

// Summary rolls up every roster employee over the range.
func (s *EmployeeServiceImpl) Summary(ctx context.Context, req attendance.RangeRequest) ([]dashboard.EmployeeRollup, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	filter := req.Filter()

	roster, err := s.employeeRepo.List(ctx, filter.EmployeeID)
	if err != nil {
		return nil, err
	}
	if filter.EmployeeID != "" && len(roster) == 0 {
		return nil, attendance.ErrRecordNotFound
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dashboardservice.SortedRollups(dashboardservice.ByEmployee(records, roster)), nil
}

func (s *EmployeeServiceImpl) History(ctx context.Context, employeeID string, req attendance.RangeRequest) (dashboard.EmployeeHistoryResponse, error) {
	req.EmployeeID = strings.TrimSpace(employeeID)
	if validator.IsEmpty(req.EmployeeID) {
		return dashboard.EmployeeHistoryResponse{}, validator.ValidationErrors{{Field: "employee_id", Message: "employee_id is required"}}
	}
	if err := req.Validate(); err != nil {
		return dashboard.EmployeeHistoryResponse{}, err
	}
	filter := req.Filter()

	roster, err := s.employeeRepo.List(ctx, filter.EmployeeID)
	if err != nil {
		return dashboard.EmployeeHistoryResponse{}, err
	}
	if len(roster) == 0 {
		return dashboard.EmployeeHistoryResponse{}, attendance.ErrRecordNotFound
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return dashboard.EmployeeHistoryResponse{}, err
	}

	return dashboard.EmployeeHistoryResponse{
		Employee: dashboardservice.ByEmployee(records, roster)[filter.EmployeeID],
		Range:    dashboard.NewDateRange(filter),
		Records:  attendance.NewRecordResponses(records),
	}, nil
}

package http

import (
	"context"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/settings"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/upload"
	"github.com/stretchr/testify/mock"
)

type MockAttendanceService struct {
	mock.Mock
}

func (m *MockAttendanceService) Import(ctx context.Context, req attendance.ImportRequest) (attendance.ImportResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(attendance.ImportResponse), args.Error(1)
}

func (m *MockAttendanceService) List(ctx context.Context, req attendance.RangeRequest) ([]attendance.RecordResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).([]attendance.RecordResponse), args.Error(1)
}

func (m *MockAttendanceService) ListByDate(ctx context.Context, date string) ([]attendance.RecordResponse, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]attendance.RecordResponse), args.Error(1)
}

func (m *MockAttendanceService) CalendarDates(ctx context.Context) (attendance.CalendarDatesResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(attendance.CalendarDatesResponse), args.Error(1)
}

func (m *MockAttendanceService) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAttendanceService) Recalculate(ctx context.Context, req attendance.RecalculateRequest) (attendance.RecalculateResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(attendance.RecalculateResponse), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetDashboard(ctx context.Context, req dashboard.StatisticsRequest) (*dashboard.DashboardResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dashboard.DashboardResponse)
	return res, args.Error(1)
}

func (m *MockDashboardService) GetStatistics(ctx context.Context, req dashboard.StatisticsRequest) (*dashboard.StatisticsResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dashboard.StatisticsResponse)
	return res, args.Error(1)
}

func (m *MockDashboardService) GetMonthly(ctx context.Context, req dashboard.StatisticsRequest) ([]dashboard.MonthlyRollup, error) {
	args := m.Called(ctx, req)
	return args.Get(0).([]dashboard.MonthlyRollup), args.Error(1)
}

type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) List(ctx context.Context, employeeID string) ([]employee.EmployeeResponse, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]employee.EmployeeResponse), args.Error(1)
}

func (m *MockEmployeeService) Summary(ctx context.Context, req attendance.RangeRequest) ([]dashboard.EmployeeRollup, error) {
	args := m.Called(ctx, req)
	return args.Get(0).([]dashboard.EmployeeRollup), args.Error(1)
}

func (m *MockEmployeeService) History(ctx context.Context, employeeID string, req attendance.RangeRequest) (dashboard.EmployeeHistoryResponse, error) {
	args := m.Called(ctx, employeeID, req)
	return args.Get(0).(dashboard.EmployeeHistoryResponse), args.Error(1)
}

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSettings(ctx context.Context) (settings.SettingsResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.SettingsResponse), args.Error(1)
}

func (m *MockSettingsService) UpdateSettings(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(settings.SettingsResponse), args.Error(1)
}

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) List(ctx context.Context) ([]upload.UploadResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]upload.UploadResponse), args.Error(1)
}

func (m *MockUploadService) Latest(ctx context.Context) (upload.LatestUploadResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(upload.LatestUploadResponse), args.Error(1)
}

func (m *MockUploadService) LatestFile(ctx context.Context) (upload.FileDownload, error) {
	args := m.Called(ctx)
	return args.Get(0).(upload.FileDownload), args.Error(1)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) AttendanceExcel(ctx context.Context, req report.AttendanceReportRequest) (report.ReportFile, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(report.ReportFile), args.Error(1)
}

func (m *MockReportService) AttendancePDF(ctx context.Context, req report.AttendanceReportRequest) (report.ReportFile, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(report.ReportFile), args.Error(1)
}

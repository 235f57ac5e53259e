package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/settings"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type MockAttendanceRepository struct {
	mock.Mock
	attendance.AttendanceRepository
}

func (m *MockAttendanceRepository) List(ctx context.Context, f attendance.Filter) ([]attendance.Record, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]attendance.Record), args.Error(1)
}

type MockEmployeeRepository struct {
	mock.Mock
	employee.EmployeeRepository
}

func (m *MockEmployeeRepository) List(ctx context.Context, employeeID string) ([]employee.Employee, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]employee.Employee), args.Error(1)
}

type fixedConfig struct {
	cfg settings.ScheduleConfig
}

func (f fixedConfig) Get() settings.ScheduleConfig { return f.cfg }

func (f fixedConfig) Hold() (settings.ScheduleConfig, func()) { return f.cfg, func() {} }

func punch(s string) *clock.Clock {
	c := clock.MustParse(s)
	return &c
}

// storedRecords carry a stale status that the export must re-derive.
func storedRecords() []attendance.Record {
	d := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	return []attendance.Record{
		{EmployeeID: "EMP001", EmployeeName: "Ana", Date: d, PunchIn: punch("09:15"), PunchOut: punch("17:00"), BreakStart: punch("12:50"), BreakEnd: punch("14:20"), Status: attendance.StatusPresent},
		{EmployeeID: "EMP002", EmployeeName: "Budi", Date: d, Status: attendance.StatusPresent},
	}
}

func newService(t *testing.T, records []attendance.Record) report.ReportService {
	t.Helper()
	attRepo := new(MockAttendanceRepository)
	empRepo := new(MockEmployeeRepository)
	attRepo.On("List", mock.Anything, mock.Anything).Return(records, nil)
	empRepo.On("List", mock.Anything, mock.Anything).Return([]employee.Employee{
		{EmployeeID: "EMP001", EmployeeName: "Ana"},
		{EmployeeID: "EMP002", EmployeeName: "Budi"},
		{EmployeeID: "EMP003", EmployeeName: "Citra"},
	}, nil)

	cfg := settings.DefaultScheduleConfig()
	cfg.Version = 3
	return NewReportService(attRepo, empRepo, fixedConfig{cfg: cfg})
}

var march = report.AttendanceReportRequest{
	RangeRequest: attendance.RangeRequest{StartDate: "2024-03-01", EndDate: "2024-03-31"},
}

func TestAttendanceExcel(t *testing.T) {
	svc := newService(t, storedRecords())

	file, err := svc.AttendanceExcel(context.Background(), march)
	require.NoError(t, err)
	assert.Equal(t, "attendance_20240301_20240331.xlsx", file.FileName)
	assert.Equal(t, report.ContentTypeExcel, file.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(recordsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Employee ID", rows[0][0])
	assert.Equal(t, []string{
		"EMP001", "Ana", "2024-03-04", "09:15", "17:00", "6.75", "60", "Late", "Yes", "Yes",
		"12:50", "14:20", "90", "Yes", "Yes",
	}, rows[1])
	assert.Equal(t, "Absent", rows[2][7])
	assert.Equal(t, "-", rows[2][5])
	assert.Equal(t, []string{"-", "-", "0", "No", "No"}, rows[2][10:15])

	emps, err := f.GetRows(employeesSheet)
	require.NoError(t, err)
	assert.Len(t, emps, 4)
	assert.Equal(t, "Citra", emps[3][1])
}

func TestAttendancePDF(t *testing.T) {
	svc := newService(t, storedRecords())

	file, err := svc.AttendancePDF(context.Background(), march)
	require.NoError(t, err)
	assert.Equal(t, report.ContentTypePDF, file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
}

func TestReport_Errors(t *testing.T) {
	t.Run("open range", func(t *testing.T) {
		svc := newService(t, storedRecords())
		_, err := svc.AttendancePDF(context.Background(), report.AttendanceReportRequest{
			RangeRequest: attendance.RangeRequest{StartDate: "2024-03-01"},
		})
		assert.ErrorIs(t, err, report.ErrInvalidDateRange)
	})

	t.Run("reversed range", func(t *testing.T) {
		svc := newService(t, storedRecords())
		_, err := svc.AttendanceExcel(context.Background(), report.AttendanceReportRequest{
			RangeRequest: attendance.RangeRequest{StartDate: "2024-03-31", EndDate: "2024-03-01"},
		})
		assert.ErrorIs(t, err, attendance.ErrInvalidDateRange)
	})

	t.Run("no data", func(t *testing.T) {
		svc := newService(t, []attendance.Record{})
		_, err := svc.AttendanceExcel(context.Background(), march)
		assert.ErrorIs(t, err, report.ErrNoData)
	})
}

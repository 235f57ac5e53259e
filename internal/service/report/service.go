package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/settings"
	attendanceservice "github.com/cmlabs-hris/attendance-dashboard-go/internal/service/attendance"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	configs        settings.ConfigProvider
	now            func() time.Time
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	configs settings.ConfigProvider,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		configs:        configs,
		now:            time.Now,
	}
}

// reportData is the input shared by every export format.
type reportData struct {
	filter      attendance.Filter
	records     []attendance.Record
	roster      []employee.Employee
	config      settings.ScheduleConfig
	generatedAt time.Time
}

func (d reportData) period() string {
	return fmt.Sprintf("%s_%s", d.filter.StartDate.Format("20060102"), d.filter.EndDate.Format("20060102"))
}

// load fetches the range and re-derives every record with the active schedule so
// exports reflect settings saved after the last recalculation.
func (s *ReportServiceImpl) load(ctx context.Context, req report.AttendanceReportRequest) (reportData, error) {
	if err := req.Validate(); err != nil {
		return reportData{}, err
	}
	filter := req.Filter()

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return reportData{}, fmt.Errorf("failed to get attendance data: %w", err)
	}
	if len(records) == 0 {
		return reportData{}, report.ErrNoData
	}

	roster, err := s.employeeRepo.List(ctx, filter.EmployeeID)
	if err != nil {
		return reportData{}, fmt.Errorf("failed to get employees: %w", err)
	}

	cfg := s.configs.Get()
	for i := range records {
		if err := attendanceservice.ClassifyRecord(&records[i], cfg); err != nil {
			slog.Warn("Keeping stored classification for report",
				"employee_id", records[i].EmployeeID,
				"date", records[i].Date.Format("2006-01-02"),
				"error", err,
			)
		}
	}

	return reportData{
		filter:      filter,
		records:     records,
		roster:      roster,
		config:      cfg,
		generatedAt: s.now(),
	}, nil
}

func (s *ReportServiceImpl) AttendanceExcel(ctx context.Context, req report.AttendanceReportRequest) (report.ReportFile, error) {
	data, err := s.load(ctx, req)
	if err != nil {
		return report.ReportFile{}, err
	}

	content, err := renderExcel(data)
	if err != nil {
		return report.ReportFile{}, fmt.Errorf("failed to render excel report: %w", err)
	}

	return report.ReportFile{
		FileName:    fmt.Sprintf("attendance_%s.xlsx", data.period()),
		ContentType: report.ContentTypeExcel,
		Content:     content,
	}, nil
}

func (s *ReportServiceImpl) AttendancePDF(ctx context.Context, req report.AttendanceReportRequest) (report.ReportFile, error) {
	data, err := s.load(ctx, req)
	if err != nil {
		return report.ReportFile{}, err
	}

	content, err := renderPDF(data)
	if err != nil {
		return report.ReportFile{}, fmt.Errorf("failed to render pdf report: %w", err)
	}

	return report.ReportFile{
		FileName:    fmt.Sprintf("attendance_report_%s.pdf", data.period()),
		ContentType: report.ContentTypePDF,
		Content:     content,
	}, nil
}

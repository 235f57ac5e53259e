package report

import "context"

type ReportService interface {
	// AttendanceExcel exports records with their derived fields as a spreadsheet
	AttendanceExcel(ctx context.Context, req AttendanceReportRequest) (ReportFile, error)

	// AttendancePDF renders the summary, monthly and per-employee tables
	AttendancePDF(ctx context.Context, req AttendanceReportRequest) (ReportFile, error)
}

package http

import (
	"bytes"
	"net/http"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Attendance spreadsheet export
	AttendanceExcel(w http.ResponseWriter, r *http.Request)

	// Attendance PDF summary
	AttendancePDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func writeReport(w http.ResponseWriter, file report.ReportFile) {
	response.Attachment(w, file.FileName, file.ContentType, int64(len(file.Content)), bytes.NewReader(file.Content))
}

// AttendanceExcel handles GET /reports/attendance/excel
func (h *reportHandlerImpl) AttendanceExcel(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.AttendanceExcel(r.Context(), report.AttendanceReportRequest{RangeRequest: rangeFromQuery(r)})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeReport(w, file)
}

// AttendancePDF handles GET /reports/attendance/pdf
func (h *reportHandlerImpl) AttendancePDF(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.AttendancePDF(r.Context(), report.AttendanceReportRequest{RangeRequest: rangeFromQuery(r)})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeReport(w, file)
}

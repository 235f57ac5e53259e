package report

import (
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/validator"
)

const (
	ContentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF   = "application/pdf"
)

// AttendanceReportRequest needs a closed range.
type AttendanceReportRequest struct {
	attendance.RangeRequest
}

func (r *AttendanceReportRequest) Validate() error {
	if validator.IsEmpty(r.StartDate) || validator.IsEmpty(r.EndDate) {
		return ErrInvalidDateRange
	}
	return r.RangeRequest.Validate()
}

// ReportFile is a rendered export ready to be written to the response.
type ReportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

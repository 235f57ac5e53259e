package attendance

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/validator"
)

// ========================================
// IMPORT DTOs
// ========================================

var allowedImportExts = []string{".xlsx", ".xls", ".csv"}

// ImportRow is one already-parsed spreadsheet row.
type ImportRow struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	PunchIn      string `json:"punch_in_time"`
	PunchOut     string `json:"punch_out_time"`
	BreakStart   string `json:"break_start_time"`
	BreakEnd     string `json:"break_end_time"`
}

type ImportRequest struct {
	TargetDate string                `json:"target_date"`
	Rows       []ImportRow           `json:"rows"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *ImportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.TargetDate) {
		if _, ok := validator.IsValidDate(r.TargetDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "target_date",
				Message: "target_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.FileHeader != nil {
		ext := strings.ToLower(filepath.Ext(r.FileHeader.Filename))
		if !validator.IsInSlice(ext, allowedImportExts) {
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "invalid file type: only xlsx, xls, csv allowed",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RowError reports a row that was skipped during import.
type RowError struct {
	Row        int    `json:"row"`
	EmployeeID string `json:"employee_id,omitempty"`
	Message    string `json:"message"`
}

type ImportResponse struct {
	UploadID         string     `json:"upload_id"`
	TargetDate       string     `json:"target_date"`
	RecordsProcessed int        `json:"records_processed"`
	RecordsSuccess   int        `json:"records_success"`
	RecordsFailed    int        `json:"records_failed"`
	Errors           []RowError `json:"errors,omitempty"`
}

// ========================================
// QUERY DTOs
// ========================================

// RangeRequest is the inclusive date range plus optional employee shared by list,
// statistics and report endpoints. Empty bounds are open.
type RangeRequest struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	EmployeeID string `json:"employee_id"`
}

func (r *RangeRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !validator.IsEmpty(r.StartDate) && !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !validator.IsEmpty(r.EndDate) && !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsEmpty(r.EmployeeID) && !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id contains invalid characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	if startOK && endOK && end.Before(start) {
		return ErrInvalidDateRange
	}
	return nil
}

// Filter converts a validated request.
func (r RangeRequest) Filter() Filter {
	f := Filter{EmployeeID: strings.TrimSpace(r.EmployeeID)}
	if d, ok := validator.IsValidDate(r.StartDate); ok {
		f.StartDate = &d
	}
	if d, ok := validator.IsValidDate(r.EndDate); ok {
		f.EndDate = &d
	}
	return f
}

type RecordResponse struct {
	EmployeeID           string       `json:"employee_id"`
	EmployeeName         string       `json:"employee_name"`
	Date                 string       `json:"date"`
	PunchInTime          *clock.Clock `json:"punch_in_time"`
	PunchOutTime         *clock.Clock `json:"punch_out_time"`
	BreakStartTime       *clock.Clock `json:"break_start_time"`
	BreakEndTime         *clock.Clock `json:"break_end_time"`
	WorkingHours         *float64     `json:"working_hours"`
	WorkingHoursDisplay  string       `json:"working_hours_display"`
	BreakMinutes         int          `json:"break_minutes"`
	Status               Status       `json:"status"`
	IsLate               bool         `json:"is_late"`
	IsEarlyDeparture     bool         `json:"is_early_departure"`
	BreakDuration        int          `json:"break_duration"`
	BreakExceeded        bool         `json:"break_exceeded"`
	IsBreakOutsideWindow bool         `json:"is_break_outside_window"`
	ConfigVersion        int64        `json:"config_version"`
	UploadID             *string      `json:"upload_id,omitempty"`
}

func NewRecordResponse(r Record) RecordResponse {
	display := "-"
	if r.WorkingHours != nil {
		display = clock.FormatHours(*r.WorkingHours)
	}
	return RecordResponse{
		EmployeeID:           r.EmployeeID,
		EmployeeName:         r.EmployeeName,
		Date:                 r.Date.Format("2006-01-02"),
		PunchInTime:          r.PunchIn,
		PunchOutTime:         r.PunchOut,
		BreakStartTime:       r.BreakStart,
		BreakEndTime:         r.BreakEnd,
		WorkingHours:         r.WorkingHours,
		WorkingHoursDisplay:  display,
		BreakMinutes:         r.BreakMinutes,
		Status:               r.Status,
		IsLate:               r.IsLate,
		IsEarlyDeparture:     r.IsEarlyDeparture,
		BreakDuration:        r.BreakDuration,
		BreakExceeded:        r.BreakExceeded,
		IsBreakOutsideWindow: r.IsBreakOutsideWindow,
		ConfigVersion:        r.ConfigVersion,
		UploadID:             r.UploadID,
	}
}

func NewRecordResponses(records []Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, NewRecordResponse(r))
	}
	return out
}

type CalendarDatesResponse struct {
	Dates []string `json:"dates"`
	Count int      `json:"count"`
}

// ========================================
// RECALCULATION DTOs
// ========================================

type RecalculateRequest struct {
	// Force reprocesses records already stamped with the active version
	Force bool `json:"force"`
}

type RecalculateResponse struct {
	ConfigVersion    int64 `json:"config_version"`
	RecordsProcessed int   `json:"records_processed"`
	RecordsUpdated   int   `json:"records_updated"`
	RecordsFailed    int   `json:"records_failed"`
}

package dashboard

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/validator"
)

// StatisticsRequest accepts either a date range or a month and year.
type StatisticsRequest struct {
	attendance.RangeRequest
	Month string `json:"month"`
	Year  string `json:"year"`
}

func (r *StatisticsRequest) Validate() error {
	var errs validator.ValidationErrors

	hasMonth := !validator.IsEmpty(r.Month)
	hasYear := !validator.IsEmpty(r.Year)

	if hasMonth != hasYear {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month and year must be provided together",
		})
	}
	if hasMonth {
		if _, ok := validator.IsValidMonth(r.Month); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be between 1 and 12",
			})
		}
	}
	if hasYear {
		if _, ok := validator.IsValidYear(r.Year); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "year",
				Message: "year must be a four digit year",
			})
		}
	}
	if hasMonth && (!validator.IsEmpty(r.StartDate) || !validator.IsEmpty(r.EndDate)) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "use either month/year or start_date/end_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return r.RangeRequest.Validate()
}

// Filter converts a validated request. Month and year select the whole month.
func (r StatisticsRequest) Filter() attendance.Filter {
	if validator.IsEmpty(r.Month) {
		return r.RangeRequest.Filter()
	}
	m, _ := validator.IsValidMonth(r.Month)
	y, _ := validator.IsValidYear(r.Year)
	start := time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	f := r.RangeRequest.Filter()
	f.StartDate = &start
	f.EndDate = &end
	return f
}

type DateRange struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

func NewDateRange(f attendance.Filter) DateRange {
	var dr DateRange
	if f.StartDate != nil {
		s := f.StartDate.Format("2006-01-02")
		dr.StartDate = &s
	}
	if f.EndDate != nil {
		s := f.EndDate.Format("2006-01-02")
		dr.EndDate = &s
	}
	return dr
}

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Range     DateRange         `json:"range"`
	Summary   StatisticsSummary `json:"summary"`
	Monthly   []MonthlyRollup   `json:"monthly"`
	Employees []EmployeeRollup  `json:"employees"`
}

type StatisticsResponse struct {
	Range      DateRange         `json:"range"`
	EmployeeID string            `json:"employee_id,omitempty"`
	Summary    StatisticsSummary `json:"summary"`
}

type EmployeeHistoryResponse struct {
	Employee EmployeeRollup              `json:"employee"`
	Range    DateRange                   `json:"range"`
	Records  []attendance.RecordResponse `json:"records"`
}

// MonthLabel renders "2024-01" as "January 2024".
func MonthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%s %d", t.Month(), t.Year())
}

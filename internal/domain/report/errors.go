package report

import "errors"

var (
	ErrInvalidDateRange = errors.New("report requires start_date and end_date")
	ErrNoData           = errors.New("no attendance data for the requested range")
)

package attendance

import "errors"

var (
	ErrRecordNotFound   = errors.New("no attendance records found for employee")
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")
)

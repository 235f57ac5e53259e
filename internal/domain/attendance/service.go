package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Import classifies and stores a batch of parsed punch rows
	Import(ctx context.Context, req ImportRequest) (ImportResponse, error)

	// List returns records in a date range, optionally for one employee
	List(ctx context.Context, req RangeRequest) ([]RecordResponse, error)

	// ListByDate returns every record of one day
	ListByDate(ctx context.Context, date string) ([]RecordResponse, error)

	// CalendarDates returns the dates that have data
	CalendarDates(ctx context.Context) (CalendarDatesResponse, error)

	// DeleteAll wipes attendance data, import history and the roster
	DeleteAll(ctx context.Context) error

	// Recalculate re-derives stored records with the active schedule
	Recalculate(ctx context.Context, req RecalculateRequest) (RecalculateResponse, error)
}

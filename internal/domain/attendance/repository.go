package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Upsert inserts the record or replaces the one with the same employee and date
	Upsert(ctx context.Context, record Record) error

	// List returns records matching the filter ordered by date then employee
	List(ctx context.Context, filter Filter) ([]Record, error)

	// ListDates returns every distinct date that has at least one record
	ListDates(ctx context.Context) ([]time.Time, error)

	// ListStale returns records whose derived fields were computed with another
	// config version. All records are returned when force is set.
	ListStale(ctx context.Context, configVersion int64, force bool) ([]Record, error)

	// UpdateDerived writes the derived fields of an existing record
	UpdateDerived(ctx context.Context, record Record) error

	// DeleteAll removes every attendance record
	DeleteAll(ctx context.Context) error
}

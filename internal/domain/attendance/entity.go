package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/clock"
)

// Status is derived by the classifier only.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLate    Status = "Late"
	StatusHalfDay Status = "Half Day"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfDay:
		return true
	}
	return false
}

// CountsAsPresent reports whether the status is in the attendance rate numerator.
func (s Status) CountsAsPresent() bool {
	return s == StatusPresent || s == StatusHalfDay
}

// Punches are the raw clock-in and clock-out of one day, plus the optional
// recorded break.
type Punches struct {
	PunchIn    *clock.Clock
	PunchOut   *clock.Clock
	BreakStart *clock.Clock
	BreakEnd   *clock.Clock
}

// Classification holds every field the classifier derives from punches.
type Classification struct {
	Status           Status
	IsLate           bool
	WorkingHours     *float64
	BreakMinutes     int
	IsEarlyDeparture bool

	// Recorded break, zero unless both break punches are present.
	BreakDuration        int
	BreakExceeded        bool
	IsBreakOutsideWindow bool
}

// Record is one employee on one calendar day, keyed by (EmployeeID, Date).
type Record struct {
	EmployeeID   string
	EmployeeName string
	Date         time.Time
	PunchIn      *clock.Clock
	PunchOut     *clock.Clock
	BreakStart   *clock.Clock
	BreakEnd     *clock.Clock

	Status               Status
	IsLate               bool
	WorkingHours         *float64
	BreakMinutes         int
	IsEarlyDeparture     bool
	BreakDuration        int
	BreakExceeded        bool
	IsBreakOutsideWindow bool
	ConfigVersion        int64

	UploadID  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r Record) Punches() Punches {
	return Punches{PunchIn: r.PunchIn, PunchOut: r.PunchOut, BreakStart: r.BreakStart, BreakEnd: r.BreakEnd}
}

// Apply overwrites the derived fields. Punches are left untouched.
func (r *Record) Apply(c Classification, configVersion int64) {
	r.Status = c.Status
	r.IsLate = c.IsLate
	r.WorkingHours = c.WorkingHours
	r.BreakMinutes = c.BreakMinutes
	r.IsEarlyDeparture = c.IsEarlyDeparture
	r.BreakDuration = c.BreakDuration
	r.BreakExceeded = c.BreakExceeded
	r.IsBreakOutsideWindow = c.IsBreakOutsideWindow
	r.ConfigVersion = configVersion
}

// Classification returns the derived fields currently stored on the record.
func (r Record) Classification() Classification {
	return Classification{
		Status:               r.Status,
		IsLate:               r.IsLate,
		WorkingHours:         r.WorkingHours,
		BreakMinutes:         r.BreakMinutes,
		IsEarlyDeparture:     r.IsEarlyDeparture,
		BreakDuration:        r.BreakDuration,
		BreakExceeded:        r.BreakExceeded,
		IsBreakOutsideWindow: r.IsBreakOutsideWindow,
	}
}

// Filter narrows a record lookup. Nil bounds are open.
type Filter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	EmployeeID string
}

// NormalizeDate truncates t to a UTC date key.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

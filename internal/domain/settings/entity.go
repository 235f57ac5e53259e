package settings

import (
	"time"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/validator"
)

// ScheduleConfig is the standard workday used to classify punches.
type ScheduleConfig struct {
	StandardStartTime  clock.Clock `json:"standard_start_time"`
	StandardEndTime    clock.Clock `json:"standard_end_time"`
	StandardBreakStart clock.Clock `json:"standard_break_start"`
	StandardBreakEnd   clock.Clock `json:"standard_break_end"`
	MaxBreakDuration   int         `json:"max_break_duration"`

	// HalfDayTime is a duration written as a clock, "04:00" means four hours.
	HalfDayTime clock.Clock `json:"half_day_time"`

	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultScheduleConfig is active until settings are saved.
func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		StandardStartTime:  clock.MustParse("09:00"),
		StandardEndTime:    clock.MustParse("18:00"),
		StandardBreakStart: clock.MustParse("13:00"),
		StandardBreakEnd:   clock.MustParse("14:00"),
		MaxBreakDuration:   60,
		HalfDayTime:        clock.MustParse("04:00"),
	}
}

// HalfDayMinutes is the working time below which a day is a half day.
func (c ScheduleConfig) HalfDayMinutes() int {
	return c.HalfDayTime.Minutes()
}

// Validate checks the schedule fields and returns validator.ValidationErrors.
func (c ScheduleConfig) Validate() error {
	var errs validator.ValidationErrors

	if c.StandardStartTime >= c.StandardEndTime {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_end_time",
			Message: "standard_end_time must be after standard_start_time",
		})
	}

	if c.StandardBreakStart >= c.StandardBreakEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_break_end",
			Message: "standard_break_end must be after standard_break_start",
		})
	}

	if c.StandardBreakStart < c.StandardStartTime || c.StandardBreakEnd > c.StandardEndTime {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_break_start",
			Message: "break window must fall within the standard workday",
		})
	}

	if c.MaxBreakDuration < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_break_duration",
			Message: "max_break_duration cannot be negative",
		})
	}

	if c.HalfDayTime <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "half_day_time",
			Message: "half_day_time must be greater than 00:00",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

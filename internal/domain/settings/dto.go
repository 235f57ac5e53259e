package settings

import (
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/validator"
)

type UpdateSettingsRequest struct {
	StandardStartTime  string `json:"standard_start_time"`
	StandardEndTime    string `json:"standard_end_time"`
	StandardBreakStart string `json:"standard_break_start"`
	StandardBreakEnd   string `json:"standard_break_end"`
	MaxBreakDuration   *int   `json:"max_break_duration"`
	HalfDayTime        string `json:"half_day_time"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	fields := []struct {
		name  string
		value string
	}{
		{"standard_start_time", r.StandardStartTime},
		{"standard_end_time", r.StandardEndTime},
		{"standard_break_start", r.StandardBreakStart},
		{"standard_break_end", r.StandardBreakEnd},
		{"half_day_time", r.HalfDayTime},
	}
	for _, f := range fields {
		if validator.IsEmpty(f.value) {
			errs = append(errs, validator.ValidationError{
				Field:   f.name,
				Message: f.name + " is required",
			})
		} else if !validator.IsValidClock(f.value) {
			errs = append(errs, validator.ValidationError{
				Field:   f.name,
				Message: f.name + " must be in HH:MM format",
			})
		}
	}

	if r.MaxBreakDuration == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "max_break_duration",
			Message: "max_break_duration is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToConfig converts a validated request into a schedule.
func (r *UpdateSettingsRequest) ToConfig() (ScheduleConfig, error) {
	var (
		cfg ScheduleConfig
		err error
	)
	if cfg.StandardStartTime, err = clock.Parse(r.StandardStartTime); err != nil {
		return ScheduleConfig{}, err
	}
	if cfg.StandardEndTime, err = clock.Parse(r.StandardEndTime); err != nil {
		return ScheduleConfig{}, err
	}
	if cfg.StandardBreakStart, err = clock.Parse(r.StandardBreakStart); err != nil {
		return ScheduleConfig{}, err
	}
	if cfg.StandardBreakEnd, err = clock.Parse(r.StandardBreakEnd); err != nil {
		return ScheduleConfig{}, err
	}
	if cfg.HalfDayTime, err = clock.Parse(r.HalfDayTime); err != nil {
		return ScheduleConfig{}, err
	}
	if r.MaxBreakDuration != nil {
		cfg.MaxBreakDuration = *r.MaxBreakDuration
	}
	return cfg, nil
}

type SettingsResponse struct {
	ScheduleConfig
	HalfDayHours float64 `json:"half_day_hours"`
}

func NewSettingsResponse(cfg ScheduleConfig) SettingsResponse {
	return SettingsResponse{
		ScheduleConfig: cfg,
		HalfDayHours:   clock.RoundHours(cfg.HalfDayMinutes()),
	}
}

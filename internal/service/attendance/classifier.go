package attendance

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/settings"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/clock"
)

// Classify derives status, lateness and working hours of one day from its punches.
// It depends only on its arguments.
func Classify(p attendance.Punches, cfg settings.ScheduleConfig) (attendance.Classification, error) {
	// Without a punch-in the day is not attended, whatever else was recorded.
	if p.PunchIn == nil {
		return attendance.Classification{Status: attendance.StatusAbsent}, nil
	}

	in := *p.PunchIn
	isLate := in > cfg.StandardStartTime

	c := attendance.Classification{IsLate: isLate}
	if err := classifyBreak(&c, p, cfg); err != nil {
		return attendance.Classification{}, err
	}

	// An open day has no span to credit, so hours stay unknown.
	if p.PunchOut == nil {
		c.Status = attendance.StatusHalfDay
		return c, nil
	}

	out := *p.PunchOut

	span, err := clock.Duration(in, out)
	if err != nil {
		return attendance.Classification{}, err
	}

	breakMinutes := min(
		clock.OverlapMinutes(in, out, cfg.StandardBreakStart, cfg.StandardBreakEnd),
		max(cfg.MaxBreakDuration, 0),
	)
	worked := max(span-breakMinutes, 0)
	hours := clock.RoundHours(worked)

	c.WorkingHours = &hours
	c.BreakMinutes = breakMinutes
	c.IsEarlyDeparture = out >= in && out < cfg.StandardEndTime

	switch {
	case worked < cfg.HalfDayMinutes():
		c.Status = attendance.StatusHalfDay
	case isLate:
		c.Status = attendance.StatusLate
	default:
		c.Status = attendance.StatusPresent
	}

	return c, nil
}

// classifyBreak checks the recorded break against the configured limit and window.
// Nothing is flagged unless both break punches are present.
func classifyBreak(c *attendance.Classification, p attendance.Punches, cfg settings.ScheduleConfig) error {
	if p.BreakStart == nil || p.BreakEnd == nil {
		return nil
	}
	start, end := *p.BreakStart, *p.BreakEnd
	if end < start {
		return fmt.Errorf("break ends before it starts: %w", clock.ErrInvalidPunchOrder)
	}

	c.BreakDuration = end.Minutes() - start.Minutes()
	c.BreakExceeded = c.BreakDuration > cfg.MaxBreakDuration
	c.IsBreakOutsideWindow = start < cfg.StandardBreakStart || end > cfg.StandardBreakEnd
	return nil
}

// ClassifyRecord applies Classify to a stored record and stamps the config version.
func ClassifyRecord(r *attendance.Record, cfg settings.ScheduleConfig) error {
	c, err := Classify(r.Punches(), cfg)
	if err != nil {
		return err
	}
	r.Apply(c, cfg.Version)
	return nil
}

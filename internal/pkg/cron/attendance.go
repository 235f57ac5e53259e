package cron

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceSvc attendance.AttendanceService
}

func NewAttendanceJobs(attendanceSvc attendance.AttendanceService) *AttendanceJobs {
	return &AttendanceJobs{attendanceSvc: attendanceSvc}
}

// RegisterJobs schedules the stale record sweep on spec.
func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, spec string) error {
	return scheduler.AddJob("recalculate_stale_attendance", spec, j.RecalculateStale)
}

// RecalculateStale finishes any recalculation interrupted before every record
// was stamped with the active config version.
func (j *AttendanceJobs) RecalculateStale(ctx context.Context) error {
	slog.Info("Cron: Starting stale attendance recalculation")

	result, err := j.attendanceSvc.Recalculate(ctx, attendance.RecalculateRequest{Force: false})
	if err != nil {
		return fmt.Errorf("failed to recalculate stale attendance: %w", err)
	}

	slog.Info("Cron: Stale attendance recalculation done",
		"config_version", result.ConfigVersion,
		"processed", result.RecordsProcessed,
		"updated", result.RecordsUpdated,
		"failed", result.RecordsFailed,
	)
	return nil
}

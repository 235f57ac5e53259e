package settings

import "context"

// SettingsRepository persists the single active schedule.
type SettingsRepository interface {
	// Get returns ErrSettingsNotFound when nothing was saved yet
	Get(ctx context.Context) (ScheduleConfig, error)

	// Save replaces the stored schedule and returns it with the stored timestamp
	Save(ctx context.Context, cfg ScheduleConfig) (ScheduleConfig, error)
}

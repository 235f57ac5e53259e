package settings

import "context"

// ConfigProvider hands out schedule snapshots to classification callers.
type ConfigProvider interface {
	// Get returns the active snapshot
	Get() ScheduleConfig

	// Hold pins the active snapshot until release is called; saves wait for it
	Hold() (ScheduleConfig, func())
}

type SettingsService interface {
	GetSettings(ctx context.Context) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}

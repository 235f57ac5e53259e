package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/settings"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get implements settings.SettingsRepository.
func (r *settingsRepository) Get(ctx context.Context) (settings.ScheduleConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT standard_start_time, standard_end_time, standard_break_start, standard_break_end,
			   max_break_duration, half_day_time, version, updated_at
		FROM schedule_settings
		WHERE id = 1
	`

	var (
		cfg                                  settings.ScheduleConfig
		start, end, breakStart, breakEnd, hd string
	)
	err := q.QueryRow(ctx, query).Scan(
		&start, &end, &breakStart, &breakEnd,
		&cfg.MaxBreakDuration, &hd, &cfg.Version, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.ScheduleConfig{}, settings.ErrSettingsNotFound
		}
		return settings.ScheduleConfig{}, fmt.Errorf("failed to get settings: %w", err)
	}

	fields := []struct {
		text string
		dst  *clock.Clock
	}{
		{start, &cfg.StandardStartTime},
		{end, &cfg.StandardEndTime},
		{breakStart, &cfg.StandardBreakStart},
		{breakEnd, &cfg.StandardBreakEnd},
		{hd, &cfg.HalfDayTime},
	}
	for _, f := range fields {
		if *f.dst, err = clock.Parse(f.text); err != nil {
			return settings.ScheduleConfig{}, fmt.Errorf("stored settings are corrupt: %w", err)
		}
	}

	return cfg, nil
}

// Save implements settings.SettingsRepository.
func (r *settingsRepository) Save(ctx context.Context, cfg settings.ScheduleConfig) (settings.ScheduleConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_settings (
			id, standard_start_time, standard_end_time, standard_break_start, standard_break_end,
			max_break_duration, half_day_time, version, updated_at
		) VALUES (1, $1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE SET
			standard_start_time  = EXCLUDED.standard_start_time,
			standard_end_time    = EXCLUDED.standard_end_time,
			standard_break_start = EXCLUDED.standard_break_start,
			standard_break_end   = EXCLUDED.standard_break_end,
			max_break_duration   = EXCLUDED.max_break_duration,
			half_day_time        = EXCLUDED.half_day_time,
			version              = EXCLUDED.version,
			updated_at           = NOW()
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		cfg.StandardStartTime.String(),
		cfg.StandardEndTime.String(),
		cfg.StandardBreakStart.String(),
		cfg.StandardBreakEnd.String(),
		cfg.MaxBreakDuration,
		cfg.HalfDayTime.String(),
		cfg.Version,
	).Scan(&cfg.UpdatedAt)
	if err != nil {
		return settings.ScheduleConfig{}, fmt.Errorf("failed to save settings: %w", err)
	}

	return cfg, nil
}

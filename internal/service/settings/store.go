package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/settings"
)

// Store holds the single active schedule. Readers load an immutable snapshot,
// Set swaps it in one step and waits for every Hold to be released first.
type Store struct {
	repo    settings.SettingsRepository
	current atomic.Pointer[settings.ScheduleConfig]
	mu      sync.RWMutex
}

func NewStore(repo settings.SettingsRepository) *Store {
	s := &Store{repo: repo}
	defaults := settings.DefaultScheduleConfig()
	s.current.Store(&defaults)
	return s
}

// Load replaces the defaults with persisted settings when there are any.
func (s *Store) Load(ctx context.Context) error {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			slog.Info("No saved settings, using defaults")
			return nil
		}
		return fmt.Errorf("failed to load settings: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Store(&cfg)
	slog.Info("Settings loaded", "version", cfg.Version)
	return nil
}

// Get returns the active snapshot.
func (s *Store) Get() settings.ScheduleConfig {
	return *s.current.Load()
}

// Hold pins the active snapshot for a batch job. Set blocks until release runs.
func (s *Store) Hold() (settings.ScheduleConfig, func()) {
	s.mu.RLock()
	var once sync.Once
	return s.Get(), func() { once.Do(s.mu.RUnlock) }
}

// Set validates, persists and activates cfg. Nothing is applied on failure.
func (s *Store) Set(ctx context.Context, cfg settings.ScheduleConfig) (settings.ScheduleConfig, error) {
	if err := cfg.Validate(); err != nil {
		return settings.ScheduleConfig{}, fmt.Errorf("%w: %w", settings.ErrInvalidScheduleConfig, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cfg.Version = s.Get().Version + 1
	saved, err := s.repo.Save(ctx, cfg)
	if err != nil {
		return settings.ScheduleConfig{}, fmt.Errorf("failed to save settings: %w", err)
	}

	s.current.Store(&saved)
	slog.Info("Settings updated", "version", saved.Version)
	return saved, nil
}

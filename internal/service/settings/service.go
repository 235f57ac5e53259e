package settings

import (
	"context"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	store *Store
}

func NewSettingsService(store *Store) settings.SettingsService {
	return &SettingsServiceImpl{store: store}
}

// GetSettings implements settings.SettingsService.
func (s *SettingsServiceImpl) GetSettings(ctx context.Context) (settings.SettingsResponse, error) {
	return settings.NewSettingsResponse(s.store.Get()), nil
}

// UpdateSettings implements settings.SettingsService.
func (s *SettingsServiceImpl) UpdateSettings(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingsResponse{}, err
	}

	cfg, err := req.ToConfig()
	if err != nil {
		return settings.SettingsResponse{}, err
	}

	saved, err := s.store.Set(ctx, cfg)
	if err != nil {
		return settings.SettingsResponse{}, err
	}

	return settings.NewSettingsResponse(saved), nil
}

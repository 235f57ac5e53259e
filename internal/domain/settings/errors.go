package settings

import "errors"

var (
	ErrInvalidScheduleConfig = errors.New("invalid schedule configuration")
	ErrSettingsNotFound      = errors.New("settings have not been saved yet")
)

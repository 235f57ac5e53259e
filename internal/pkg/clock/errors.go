package clock

import "errors"

var (
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")
	ErrInvalidPunchOrder = errors.New("punch span exceeds the maximum shift length")
)

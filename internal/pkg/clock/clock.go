package clock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	MinutesPerDay = 24 * 60

	// MaxShiftMinutes is the longest punch span accepted as a real shift.
	MaxShiftMinutes = 18 * 60
)

// Clock is a time of day in minutes since midnight.
type Clock int

var clockRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

// Parse parses a 24h "HH:MM" string. A trailing ":SS" is accepted and dropped.
func Parse(text string) (Clock, error) {
	m := clockRegex.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}
	if m[3] != "" {
		if second, _ := strconv.Atoi(m[3]); second > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
		}
	}

	return Clock(hour*60 + minute), nil
}

// ParseOptional returns nil for an empty string.
func ParseOptional(text string) (*Clock, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	c, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// MustParse is Parse for constants and tests.
func MustParse(text string) Clock {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

// Minutes returns the clock as minutes since midnight.
func (c Clock) Minutes() int { return int(c) }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Clock) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Duration returns the minutes between two punches. A punch out earlier than the
// punch in is an overnight shift and wraps by 24h.
func Duration(in, out Clock) (int, error) {
	d := int(out) - int(in)
	if d < 0 {
		d += MinutesPerDay
	}
	if d > MaxShiftMinutes {
		return 0, fmt.Errorf("%w: %s -> %s is %d minutes", ErrInvalidPunchOrder, in, out, d)
	}
	return d, nil
}

// OverlapMinutes returns how many minutes interval A shares with interval B.
// An interval whose end is before its start crosses midnight.
func OverlapMinutes(startA, endA, startB, endB Clock) int {
	a0, a1 := unwrap(startA, endA)
	b0, b1 := unwrap(startB, endB)

	return overlap(a0, a1, b0, b1) +
		overlap(a0, a1, b0+MinutesPerDay, b1+MinutesPerDay) +
		overlap(a0, a1, b0-MinutesPerDay, b1-MinutesPerDay)
}

func unwrap(start, end Clock) (int, int) {
	s, e := int(start), int(end)
	if e < s {
		e += MinutesPerDay
	}
	return s, e
}

func overlap(a0, a1, b0, b1 int) int {
	lo := max(a0, b0)
	hi := min(a1, b1)
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// RoundHours converts minutes to hours rounded to two decimals.
func RoundHours(minutes int) float64 {
	return decimal.NewFromInt(int64(minutes)).
		Div(decimal.NewFromInt(60)).
		Round(2).
		InexactFloat64()
}

// FormatHours renders decimal hours as "7h 45m".
func FormatHours(hours float64) string {
	if hours <= 0 {
		return "0h 0m"
	}

	totalMinutes := decimal.NewFromFloat(hours).Mul(decimal.NewFromInt(60)).Round(0).IntPart()
	h := totalMinutes / 60
	m := totalMinutes % 60

	var parts []string
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	if len(parts) == 0 {
		return "0h 0m"
	}
	return strings.Join(parts, " ")
}

package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidCycle     = errors.New("model: invalid reminder cycle")
	ErrInvalidTimeOfDay = errors.New("model: invalid reminder time of day")
	ErrNegativeTiming   = errors.New("model: reminder timing must not be negative")
)

type Cycle string

const (
	CycleOnce       Cycle = "once"
	CycleMonthly    Cycle = "monthly"
	CycleHalfYearly Cycle = "half_yearly"
	CycleYearly     Cycle = "yearly"
	CycleCustom     Cycle = "custom"
)

func (c Cycle) IsValid() bool {
	switch c {
	case CycleOnce, CycleMonthly, CycleHalfYearly, CycleYearly, CycleCustom:
		return true
	default:
		return false
	}
}

const (
	minCustomMonths = 1
	maxCustomMonths = 60

	// fallbackIntervalMonths is used when the cycle value is unrecognized.
	fallbackIntervalMonths = 12
)

// ReminderSettings controls when a record's reminders fire. Timings are
// lead-time offsets in whole days before the due date; 0 means the due date
// itself. TimeOfDay ("HH:MM") anchors the firing window within the day.
type ReminderSettings struct {
	Enabled      bool
	Cycle        Cycle
	CustomMonths int
	Timings      []int
	TimeOfDay    string
}

func (s ReminderSettings) Validate() error {
	if !s.Enabled {
		return nil
	}
	if !s.Cycle.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCycle, s.Cycle)
	}
	for _, days := range s.Timings {
		if days < 0 {
			return fmt.Errorf("%w: %d", ErrNegativeTiming, days)
		}
	}
	if _, _, err := ParseTimeOfDay(s.TimeOfDay); err != nil {
		return err
	}
	return nil
}

// IntervalMonths resolves the cycle to its recurrence interval in months.
// Zero means no recurrence. Out-of-range custom values are clamped rather
// than rejected, and an unrecognized cycle falls back to yearly.
func (s ReminderSettings) IntervalMonths() int {
	switch s.Cycle {
	case CycleOnce:
		return 0
	case CycleMonthly:
		return 1
	case CycleHalfYearly:
		return 6
	case CycleYearly:
		return 12
	case CycleCustom:
		return clampCustomMonths(s.CustomMonths)
	default:
		return fallbackIntervalMonths
	}
}

func (s ReminderSettings) HasTiming(days int) bool {
	for _, t := range s.Timings {
		if t == days {
			return true
		}
	}
	return false
}

func clampCustomMonths(v int) int {
	if v < minCustomMonths {
		return minCustomMonths
	}
	if v > maxCustomMonths {
		return maxCustomMonths
	}
	return v
}

// ParseTimeOfDay parses a wall-clock "HH:MM" value.
func ParseTimeOfDay(value string) (hour, minute int, err error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, value)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, value)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, value)
	}
	return hour, minute, nil
}

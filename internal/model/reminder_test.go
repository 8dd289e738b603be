package model

import (
	"errors"
	"testing"
)

func TestIntervalMonthsPerCycle(t *testing.T) {
	cases := []struct {
		cycle        Cycle
		customMonths int
		want         int
	}{
		{CycleOnce, 0, 0},
		{CycleMonthly, 0, 1},
		{CycleHalfYearly, 0, 6},
		{CycleYearly, 0, 12},
		{CycleCustom, 3, 3},
		{Cycle("quarterly"), 0, 12}, // unrecognized falls back to yearly
	}
	for _, tc := range cases {
		s := ReminderSettings{Cycle: tc.cycle, CustomMonths: tc.customMonths}
		if got := s.IntervalMonths(); got != tc.want {
			t.Fatalf("cycle %q: got %d want %d", tc.cycle, got, tc.want)
		}
	}
}

func TestCustomMonthsClamped(t *testing.T) {
	low := ReminderSettings{Cycle: CycleCustom, CustomMonths: 0}
	if got := low.IntervalMonths(); got != 1 {
		t.Fatalf("custom_months=0 clamped to %d, want 1", got)
	}
	high := ReminderSettings{Cycle: CycleCustom, CustomMonths: 61}
	if got := high.IntervalMonths(); got != 60 {
		t.Fatalf("custom_months=61 clamped to %d, want 60", got)
	}
}

func TestHasTimingDuplicatesAreHarmless(t *testing.T) {
	s := ReminderSettings{Timings: []int{0, 7, 7}}
	if !s.HasTiming(7) || !s.HasTiming(0) {
		t.Fatal("expected configured timings to match")
	}
	if s.HasTiming(1) {
		t.Fatal("unexpected timing match")
	}
}

func TestParseTimeOfDay(t *testing.T) {
	h, m, err := ParseTimeOfDay("09:05")
	if err != nil || h != 9 || m != 5 {
		t.Fatalf("got %d:%d err=%v", h, m, err)
	}
	for _, bad := range []string{"", "9", "24:00", "12:60", "ab:cd"} {
		if _, _, err := ParseTimeOfDay(bad); !errors.Is(err, ErrInvalidTimeOfDay) {
			t.Fatalf("%q: expected ErrInvalidTimeOfDay, got %v", bad, err)
		}
	}
}

func TestReminderSettingsValidate(t *testing.T) {
	ok := ReminderSettings{Enabled: true, Cycle: CycleYearly, Timings: []int{0, 1}, TimeOfDay: "08:30"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("expected valid settings, got %v", err)
	}

	disabled := ReminderSettings{Enabled: false, Cycle: Cycle("bogus")}
	if err := disabled.Validate(); err != nil {
		t.Fatalf("disabled settings should not be validated further, got %v", err)
	}

	badCycle := ReminderSettings{Enabled: true, Cycle: Cycle("bogus"), TimeOfDay: "08:30"}
	if err := badCycle.Validate(); !errors.Is(err, ErrInvalidCycle) {
		t.Fatalf("expected ErrInvalidCycle, got %v", err)
	}

	negative := ReminderSettings{Enabled: true, Cycle: CycleYearly, Timings: []int{-1}, TimeOfDay: "08:30"}
	if err := negative.Validate(); !errors.Is(err, ErrNegativeTiming) {
		t.Fatalf("expected ErrNegativeTiming, got %v", err)
	}
}

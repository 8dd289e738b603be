package model

import "time"

// notifyWindowMinutes is the width of the firing window anchored at the
// configured time of day. The window never crosses an hour boundary: a
// target of 00:02 will not match 23:59 the previous day. Known limitation,
// kept on purpose.
const notifyWindowMinutes = 5

// NextDueDate computes the next calendar date, at or after now (compared at
// day granularity), on which the record's reminder cycle lands. The second
// return value is false when the record has no upcoming due date: reminders
// disabled, origin date missing, or a one-time reminder already in the past.
//
// Month addition follows time.AddDate's normalized rollover, applied to each
// step in turn: Jan 31 plus one month lands in early March, not on Feb 28.
func (a Anniversary) NextDueDate(now time.Time) (time.Time, bool) {
	if !a.Reminder.Enabled {
		return time.Time{}, false
	}
	if a.Date.IsZero() {
		return time.Time{}, false
	}

	today := dayOf(now)
	due := dayOf(a.Date)

	if a.Reminder.Cycle == CycleOnce {
		if due.Before(today) {
			return time.Time{}, false
		}
		return due, true
	}

	interval := a.Reminder.IntervalMonths()
	if interval <= 0 {
		return time.Time{}, false
	}
	// Terminates: every step advances the cursor by at least one month
	// while today stays fixed.
	for due.Before(today) {
		due = due.AddDate(0, interval, 0)
	}
	return due, true
}

// ShouldNotifyNow reports whether a reminder for the record should fire at
// this evaluation tick: now must fall inside the firing window anchored at
// the configured time of day, and the whole-day distance to the next due
// date must be one of the configured lead-time offsets. Pure and total:
// malformed settings yield false, never a panic.
func (a Anniversary) ShouldNotifyNow(now time.Time) bool {
	if !a.Reminder.Enabled {
		return false
	}
	if !inNotifyWindow(a.Reminder.TimeOfDay, now) {
		return false
	}
	days, ok := a.DaysUntil(now)
	if !ok {
		return false
	}
	return a.Reminder.HasTiming(days)
}

// DaysUntil returns the number of whole days from now's calendar day to the
// next due date. Zero means the due date is today.
func (a Anniversary) DaysUntil(now time.Time) (int, bool) {
	due, ok := a.NextDueDate(now)
	if !ok {
		return 0, false
	}
	return daysBetween(dayOf(now), due), true
}

func inNotifyWindow(timeOfDay string, now time.Time) bool {
	hour, minute, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return false
	}
	if now.Hour() != hour {
		return false
	}
	offset := now.Minute() - minute
	return offset >= 0 && offset <= notifyWindowMinutes
}

// dayOf truncates a timestamp to its calendar day, re-anchored in UTC so
// that day arithmetic is exact regardless of the source location.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}

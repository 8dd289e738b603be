package scheduler

import (
	"context"
	"testing"
	"time"

	"annid/internal/model"
)

type staticSource struct {
	records []model.Anniversary
}

func (s staticSource) ActiveAnniversaries(context.Context) ([]model.Anniversary, error) {
	return s.records, nil
}

func reminderRecord(id string, origin time.Time) model.Anniversary {
	return model.Anniversary{
		ID:        id,
		Name:      "Record " + id,
		Category:  model.CategoryBirthday,
		Date:      origin,
		CreatedAt: origin,
		Reminder: model.ReminderSettings{
			Enabled:   true,
			Cycle:     model.CycleYearly,
			Timings:   []int{0, 7},
			TimeOfDay: "09:00",
		},
	}
}

func TestEvaluateEmitsOnlyDueRecords(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 2, 0, 0, time.UTC)
	due := reminderRecord("due", time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC))
	notDue := reminderRecord("not-due", time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC))
	disabled := reminderRecord("disabled", time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC))
	disabled.Reminder.Enabled = false
	trashed := reminderRecord("trashed", time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC))
	deletedAt := now.AddDate(0, 0, -1)
	trashed.DeletedAt = &deletedAt

	events := Evaluate([]model.Anniversary{due, notDue, disabled, trashed}, now)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d: %#v", len(events), events)
	}
	ev := events[0]
	if ev.RecordID != "due" || ev.DaysLeft != 0 {
		t.Fatalf("unexpected event: %#v", ev)
	}
	if ev.DueDate.Format("2006-01-02") != "2026-03-10" {
		t.Fatalf("unexpected due date: %s", ev.DueDate)
	}
}

func TestEvaluateIsPure(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	records := []model.Anniversary{reminderRecord("a", time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC))}
	first := Evaluate(records, now)
	second := Evaluate(records, now)
	if len(first) != len(second) || len(first) != 1 {
		t.Fatalf("evaluate not stable: %d vs %d", len(first), len(second))
	}
	if first[0] != second[0] {
		t.Fatalf("evaluate not deterministic: %#v vs %#v", first[0], second[0])
	}
}

func TestTickDeduplicatesWithinTheDay(t *testing.T) {
	rec := reminderRecord("dup", time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC))
	checker := NewChecker(staticSource{records: []model.Anniversary{rec}}, nil, "", 8)
	tick := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	checker.now = func() time.Time { return tick }

	// Consecutive ticks inside the same five-minute window.
	checker.Tick(context.Background())
	tick = tick.Add(time.Minute)
	checker.Tick(context.Background())
	tick = tick.Add(time.Minute)
	checker.Tick(context.Background())

	if got := len(checker.out); got != 1 {
		t.Fatalf("expected 1 emitted event, got %d", got)
	}

	// Next day the ledger resets.
	tick = tick.AddDate(0, 0, 1)
	checker.Tick(context.Background())
	if got := len(checker.out); got != 1 {
		t.Fatalf("next-day tick outside due window should not emit, got %d", got)
	}
}

func TestTickDropsWhenConsumerIsSlow(t *testing.T) {
	records := make([]model.Anniversary, 0, 5)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		records = append(records, reminderRecord(id, time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC)))
	}
	checker := NewChecker(staticSource{records: records}, nil, "", 1)
	checker.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

	checker.Tick(context.Background())
	if checker.Dropped() != 4 {
		t.Fatalf("expected 4 dropped events, got %d", checker.Dropped())
	}
}

func TestStartRejectsBadSpec(t *testing.T) {
	checker := NewChecker(staticSource{}, nil, "not a cron spec", 1)
	if err := checker.Start(); err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
}

func TestStartRejectsNilSource(t *testing.T) {
	checker := NewChecker(nil, nil, "", 1)
	if err := checker.Start(); err == nil {
		t.Fatal("expected error for nil source")
	}
}

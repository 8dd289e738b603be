package storage

import (
	"testing"
	"time"

	"annid/internal/model"
)

func TestConvertRoundTrip(t *testing.T) {
	rec := model.Anniversary{
		ID:        "ann-1",
		Name:      "Wedding day",
		Category:  model.CategoryWedding,
		Date:      time.Date(2015, 6, 20, 0, 0, 0, 0, time.UTC),
		Notes:     "paper, cotton, leather...",
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Reminder: model.ReminderSettings{
			Enabled:   true,
			Cycle:     model.CycleYearly,
			Timings:   []int{0, 1, 7},
			TimeOfDay: "09:00",
		},
	}

	got := ToModel(FromModel(rec))
	if got.ID != rec.ID || got.Name != rec.Name || got.Category != rec.Category {
		t.Fatalf("identity fields mismatch: %#v", got)
	}
	if got.Reminder.Cycle != model.CycleYearly || !got.Reminder.Enabled {
		t.Fatalf("reminder mismatch: %#v", got.Reminder)
	}
	if len(got.Reminder.Timings) != 3 || got.Reminder.Timings[2] != 7 {
		t.Fatalf("timings mismatch: %#v", got.Reminder.Timings)
	}
}

func TestParseTimingsIgnoresGarbage(t *testing.T) {
	got := parseTimings(" 0, x, 7 , -2, 30 ")
	if len(got) != 3 || got[0] != 0 || got[1] != 7 || got[2] != 30 {
		t.Fatalf("unexpected timings: %#v", got)
	}
	if parseTimings("") != nil {
		t.Fatal("empty input should give nil")
	}
}

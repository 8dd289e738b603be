package model

import (
	"errors"
	"testing"
	"time"
)

func TestAnniversaryValidateSuccess(t *testing.T) {
	a := Anniversary{
		ID:        "ann-1",
		Name:      "Wedding day",
		Category:  CategoryWedding,
		Date:      time.Date(2015, 6, 20, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Reminder: ReminderSettings{
			Enabled:   true,
			Cycle:     CycleYearly,
			Timings:   []int{0, 7},
			TimeOfDay: "09:00",
		},
	}
	if err := a.Validate(); err != nil {
		t.Fatalf("expected valid anniversary, got %v", err)
	}
}

func TestAnniversaryValidateInvalidCategory(t *testing.T) {
	a := Anniversary{
		ID:        "ann-1",
		Name:      "Something",
		Category:  Category("holiday"),
		Date:      time.Date(2015, 6, 20, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := a.Validate(); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range []Category{CategoryBirthday, CategoryWedding, CategoryMemorial, CategoryCustom} {
		if !c.IsValid() {
			t.Fatalf("expected valid category %q", c)
		}
	}
	if Category("other").IsValid() {
		t.Fatal("expected invalid category")
	}
}

func TestTrashed(t *testing.T) {
	a := Anniversary{}
	if a.Trashed() {
		t.Fatal("fresh record must not be trashed")
	}
	deleted := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	a.DeletedAt = &deleted
	if !a.Trashed() {
		t.Fatal("record with deleted_at must be trashed")
	}
}

func TestYears(t *testing.T) {
	a := Anniversary{Date: time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC)}
	occurrence := time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)
	if got := a.Years(occurrence); got != 36 {
		t.Fatalf("got %d years, want 36", got)
	}
	if got := a.Years(time.Date(1989, 1, 1, 0, 0, 0, 0, time.UTC)); got != 0 {
		t.Fatalf("occurrence before origin should give 0, got %d", got)
	}
}

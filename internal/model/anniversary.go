package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidCategory = errors.New("model: invalid anniversary category")
)

type Category string

const (
	CategoryBirthday Category = "birthday"
	CategoryWedding  Category = "wedding"
	CategoryMemorial Category = "memorial"
	CategoryCustom   Category = "custom"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryBirthday, CategoryWedding, CategoryMemorial, CategoryCustom:
		return true
	default:
		return false
	}
}

// Anniversary is a recurring date the user wants to keep track of. Date is
// the origin occurrence; for recurring records only its month and day (and,
// for custom intervals, the origin year) stay meaningful after the first
// cycle. A non-nil DeletedAt marks the record as trashed.
type Anniversary struct {
	ID        string
	Name      string
	Category  Category
	Date      time.Time
	Notes     string
	Reminder  ReminderSettings
	CreatedAt time.Time
	DeletedAt *time.Time
}

func (a Anniversary) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("model: anniversary id is required")
	}
	if strings.TrimSpace(a.Name) == "" {
		return errors.New("model: anniversary name is required")
	}
	if !a.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, a.Category)
	}
	if a.Date.IsZero() {
		return errors.New("model: anniversary date is required")
	}
	if a.CreatedAt.IsZero() {
		return errors.New("model: anniversary created_at is required")
	}
	return a.Reminder.Validate()
}

func (a Anniversary) Trashed() bool {
	return a.DeletedAt != nil
}

// Years returns how many whole cycles the origin date has completed by the
// given occurrence, e.g. the age a birthday turns on that occurrence. Zero
// when the occurrence does not land after the origin.
func (a Anniversary) Years(occurrence time.Time) int {
	years := occurrence.Year() - a.Date.Year()
	if years < 0 {
		return 0
	}
	return years
}

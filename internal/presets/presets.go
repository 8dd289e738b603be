// Package presets ships a small catalog of fixed-date holidays that can be
// adopted as anniversary records without typing the date by hand.
package presets

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"annid/internal/model"
)

//go:embed holidays.yaml
var holidayData []byte

type Preset struct {
	Name     string `yaml:"name"`
	Month    int    `yaml:"month"`
	Day      int    `yaml:"day"`
	Category string `yaml:"category"`
}

type catalog struct {
	Presets []Preset `yaml:"presets"`
}

var (
	loadOnce sync.Once
	loaded   []Preset
	loadErr  error
)

// All returns the embedded catalog in file order.
func All() ([]Preset, error) {
	loadOnce.Do(func() {
		var c catalog
		if err := yaml.Unmarshal(holidayData, &c); err != nil {
			loadErr = fmt.Errorf("presets: parse holidays: %w", err)
			return
		}
		loaded = c.Presets
	})
	return loaded, loadErr
}

// Find looks a preset up by name, case-insensitively.
func Find(name string) (Preset, bool) {
	all, err := All()
	if err != nil {
		return Preset{}, false
	}
	want := strings.ToLower(strings.TrimSpace(name))
	for _, p := range all {
		if strings.ToLower(p.Name) == want {
			return p, true
		}
	}
	return Preset{}, false
}

// Anniversary materializes the preset as a record anchored at its next
// occurrence on or after the reference time. Reminders default to yearly on
// the day itself; the caller fills in the ID and created-at stamp.
func (p Preset) Anniversary(ref time.Time) model.Anniversary {
	category := model.Category(p.Category)
	if !category.IsValid() {
		category = model.CategoryCustom
	}
	origin := time.Date(ref.Year(), time.Month(p.Month), p.Day, 0, 0, 0, 0, time.UTC)
	if origin.Before(time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)) {
		origin = origin.AddDate(1, 0, 0)
	}
	return model.Anniversary{
		Name:     p.Name,
		Category: category,
		Date:     origin,
		Reminder: model.ReminderSettings{
			Enabled:   true,
			Cycle:     model.CycleYearly,
			Timings:   []int{0},
			TimeOfDay: "09:00",
		},
	}
}

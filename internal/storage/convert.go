package storage

import (
	"strconv"
	"strings"

	"annid/internal/model"
)

// ToModel maps a storage row to the domain record. Unparseable timing
// tokens are dropped rather than surfaced: the scheduling core treats
// whatever survives as the effective configuration.
func ToModel(in Anniversary) model.Anniversary {
	return model.Anniversary{
		ID:        in.ID,
		Name:      in.Name,
		Category:  model.Category(in.Category),
		Date:      in.Date,
		Notes:     in.Notes,
		CreatedAt: in.CreatedAt,
		DeletedAt: in.DeletedAt,
		Reminder: model.ReminderSettings{
			Enabled:      in.ReminderEnabled,
			Cycle:        model.Cycle(in.ReminderCycle),
			CustomMonths: in.CustomMonths,
			Timings:      parseTimings(in.Timings),
			TimeOfDay:    in.TimeOfDay,
		},
	}
}

func FromModel(in model.Anniversary) Anniversary {
	return Anniversary{
		ID:              in.ID,
		Name:            in.Name,
		Category:        string(in.Category),
		Date:            in.Date,
		Notes:           in.Notes,
		ReminderEnabled: in.Reminder.Enabled,
		ReminderCycle:   string(in.Reminder.Cycle),
		CustomMonths:    in.Reminder.CustomMonths,
		Timings:         encodeTimings(in.Reminder.Timings),
		TimeOfDay:       in.Reminder.TimeOfDay,
		CreatedAt:       in.CreatedAt,
		DeletedAt:       in.DeletedAt,
	}
}

func encodeTimings(timings []int) string {
	if len(timings) == 0 {
		return ""
	}
	parts := make([]string, 0, len(timings))
	for _, t := range timings {
		parts = append(parts, strconv.Itoa(t))
	}
	return strings.Join(parts, ",")
}

func parseTimings(raw string) []int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	out := make([]int, 0, 4)
	for _, token := range strings.Split(trimmed, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil || v < 0 {
			continue
		}
		out = append(out, v)
	}
	return out
}

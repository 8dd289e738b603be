package update

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"annid/internal/model"
)

const (
	editorFieldCycle   = "cycle"
	editorFieldMonths  = "months"
	editorFieldOffsets = "offsets"
	editorFieldTime    = "time"
)

func (m *Model) openReminderEditor() {
	rec, ok := m.selectedRecord()
	if !ok {
		m.Status = StatusBar{Text: "nothing selected to edit", IsError: true}
		return
	}
	m.reminderEditor = ReminderEditorState{
		Active:           true,
		Field:            editorFieldCycle,
		Cycle:            string(rec.Reminder.Cycle),
		CustomMonthsText: strconv.Itoa(rec.Reminder.CustomMonths),
		TimingsText:      formatTimings(rec.Reminder.Timings),
		TimeText:         rec.Reminder.TimeOfDay,
	}
	m.Status = StatusBar{Text: fmt.Sprintf("editing reminders: %s", rec.Name), IsError: false}
}

func (m Model) handleReminderEditorKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.reminderEditor.Active = false
		return m
	case "tab":
		// Walk the cycle values in a fixed order so the editor stays
		// predictable.
		switch m.reminderEditor.Cycle {
		case string(model.CycleOnce):
			m.reminderEditor.Cycle = string(model.CycleMonthly)
		case string(model.CycleMonthly):
			m.reminderEditor.Cycle = string(model.CycleHalfYearly)
		case string(model.CycleHalfYearly):
			m.reminderEditor.Cycle = string(model.CycleYearly)
		case string(model.CycleYearly):
			m.reminderEditor.Cycle = string(model.CycleCustom)
		default:
			m.reminderEditor.Cycle = string(model.CycleOnce)
		}
	case "up":
		m.reminderEditor.Field = m.editorFieldBefore(m.reminderEditor.Field)
	case "down":
		m.reminderEditor.Field = m.editorFieldAfter(m.reminderEditor.Field)
	case "enter":
		m.saveReminderEditor()
	case "backspace":
		m.editActiveField(func(v string) string {
			if len(v) > 0 {
				return v[:len(v)-1]
			}
			return v
		})
	default:
		if msg.Type == tea.KeyRunes {
			runes := string(msg.Runes)
			m.editActiveField(func(v string) string { return v + runes })
		}
	}
	return m
}

func (m Model) editorFields() []string {
	if m.reminderEditor.Cycle == string(model.CycleCustom) {
		return []string{editorFieldCycle, editorFieldMonths, editorFieldOffsets, editorFieldTime}
	}
	return []string{editorFieldCycle, editorFieldOffsets, editorFieldTime}
}

func (m Model) editorFieldBefore(current string) string {
	fields := m.editorFields()
	for i, f := range fields {
		if f == current && i > 0 {
			return fields[i-1]
		}
	}
	return fields[0]
}

func (m Model) editorFieldAfter(current string) string {
	fields := m.editorFields()
	for i, f := range fields {
		if f == current && i < len(fields)-1 {
			return fields[i+1]
		}
	}
	return fields[len(fields)-1]
}

func (m *Model) editActiveField(apply func(string) string) {
	switch m.reminderEditor.Field {
	case editorFieldMonths:
		m.reminderEditor.CustomMonthsText = apply(m.reminderEditor.CustomMonthsText)
	case editorFieldOffsets:
		m.reminderEditor.TimingsText = apply(m.reminderEditor.TimingsText)
	case editorFieldTime:
		m.reminderEditor.TimeText = apply(m.reminderEditor.TimeText)
	}
}

func (m *Model) saveReminderEditor() {
	rec, ok := m.selectedRecord()
	if !ok {
		m.reminderEditor.Err = "nothing selected"
		return
	}
	settings := model.ReminderSettings{
		Enabled:   true,
		Cycle:     model.Cycle(m.reminderEditor.Cycle),
		TimeOfDay: strings.TrimSpace(m.reminderEditor.TimeText),
	}
	if settings.Cycle == model.CycleCustom {
		months, err := strconv.Atoi(strings.TrimSpace(m.reminderEditor.CustomMonthsText))
		if err != nil {
			m.reminderEditor.Err = fmt.Sprintf("invalid month interval %q", m.reminderEditor.CustomMonthsText)
			return
		}
		settings.CustomMonths = months
	}
	timings, err := parseTimingsArg(m.reminderEditor.TimingsText)
	if err != nil {
		m.reminderEditor.Err = err.Error()
		return
	}
	settings.Timings = timings
	if err := settings.Validate(); err != nil {
		m.reminderEditor.Err = err.Error()
		return
	}
	rec.Reminder = settings
	if err := m.updateRecord(rec); err != nil {
		m.reminderEditor.Err = err.Error()
		return
	}
	m.reminderEditor.Err = ""
	m.computeDuePreview(rec)
	m.Status = StatusBar{Text: fmt.Sprintf("reminders saved: %s", rec.Name), IsError: false}
}

// computeDuePreview lists the next few due dates under the saved settings.
func (m *Model) computeDuePreview(rec model.Anniversary) {
	m.reminderEditor.Preview = m.reminderEditor.Preview[:0]
	now := m.now()
	interval := rec.Reminder.IntervalMonths()
	due, ok := rec.NextDueDate(now)
	if !ok {
		return
	}
	for i := 0; i < 3; i++ {
		m.reminderEditor.Preview = append(m.reminderEditor.Preview, due.Format("2006-01-02"))
		if interval <= 0 {
			break
		}
		due = due.AddDate(0, interval, 0)
	}
}

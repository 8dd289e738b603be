package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"annid/internal/commands"
	"annid/internal/model"
)

func (m Model) handleUpcomingKey(msg tea.KeyMsg) Model {
	if m.Upcoming.CaptureMode {
		switch msg.String() {
		case "esc":
			m.Upcoming.CaptureMode = false
			m.quickAddInput.Blur()
			m.Status = StatusBar{Text: "upcoming list mode", IsError: false}
			return m
		case "enter":
			m.commitQuickAdd(m.quickAddInput.Value())
			m.quickAddInput.SetValue("")
			m.Upcoming.Input = ""
			return m
		}
		var cmd tea.Cmd
		m.quickAddInput, cmd = m.quickAddInput.Update(msg)
		_ = cmd
		m.Upcoming.Input = m.quickAddInput.Value()
		return m
	}

	switch msg.String() {
	case "a", "enter":
		m.Upcoming.CaptureMode = true
		m.quickAddInput.Focus()
		m.Status = StatusBar{Text: "capture mode: <name> on <date>", IsError: false}
	case "up", "k":
		if m.Upcoming.Cursor > 0 {
			m.Upcoming.Cursor--
		}
		m.syncSelectedToUpcomingCursor()
	case "down", "j":
		if m.Upcoming.Cursor < len(m.Records)-1 {
			m.Upcoming.Cursor++
		}
		m.syncSelectedToUpcomingCursor()
	case "t":
		m.trashSelected()
	}
	return m
}

// commitQuickAdd parses "<name> on <date>" and stores the record with the
// default yearly reminder.
func (m *Model) commitQuickAdd(raw string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return
	}
	cmd, err := commands.Parse("add " + trimmed)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	date, err := commands.ResolveDate(cmd.Add.When, m.now())
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	rec := model.Anniversary{
		ID:        uuid.NewString(),
		Name:      cmd.Add.Name,
		Category:  model.CategoryCustom,
		Date:      date,
		Reminder:  defaultReminder(),
		CreatedAt: m.now(),
	}
	if err := m.createRecord(rec); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("added: %s on %s", rec.Name, date.Format("2006-01-02")), IsError: false}
}

func (m *Model) trashSelected() {
	rec, ok := m.selectedRecord()
	if !ok {
		m.Status = StatusBar{Text: "nothing selected to trash", IsError: true}
		return
	}
	if err := m.trashRecord(rec.ID); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("trashed: %s", rec.Name), IsError: false}
}

func defaultReminder() model.ReminderSettings {
	return model.ReminderSettings{
		Enabled:   true,
		Cycle:     model.CycleYearly,
		Timings:   []int{0},
		TimeOfDay: "09:00",
	}
}

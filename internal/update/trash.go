package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"annid/internal/model"
)

func (m Model) handleTrashKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.Trash.Cursor > 0 {
			m.Trash.Cursor--
		}
	case "down", "j":
		if m.Trash.Cursor < len(m.TrashRecords)-1 {
			m.Trash.Cursor++
		}
	case "r":
		if rec, ok := m.currentTrashRecord(); ok {
			if err := m.restoreRecord(rec.ID); err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
				return m
			}
			m.Status = StatusBar{Text: fmt.Sprintf("restored: %s", rec.Name), IsError: false}
		}
	case "x":
		if rec, ok := m.currentTrashRecord(); ok {
			if err := m.purgeRecord(rec.ID); err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
				return m
			}
			m.Status = StatusBar{Text: fmt.Sprintf("purged: %s", rec.Name), IsError: false}
		}
	}
	return m
}

func (m Model) currentTrashRecord() (model.Anniversary, bool) {
	if len(m.TrashRecords) == 0 || m.Trash.Cursor < 0 || m.Trash.Cursor >= len(m.TrashRecords) {
		return model.Anniversary{}, false
	}
	return m.TrashRecords[m.Trash.Cursor], true
}

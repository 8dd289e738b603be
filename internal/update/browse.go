package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

var categoryFilters = []string{"", "birthday", "wedding", "memorial", "custom"}

func (m Model) handleAllKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.All.Cursor > 0 {
			m.All.Cursor--
		}
		m.syncSelectedToAllCursor()
	case "down", "j":
		if m.All.Cursor < len(m.allRecords())-1 {
			m.All.Cursor++
		}
		m.syncSelectedToAllCursor()
	case "f":
		m.cycleCategoryFilter()
	case "t":
		m.trashSelected()
	}
	return m
}

func (m *Model) cycleCategoryFilter() {
	idx := 0
	for i, c := range categoryFilters {
		if c == m.All.Category {
			idx = i
			break
		}
	}
	m.All.Category = categoryFilters[(idx+1)%len(categoryFilters)]
	m.All.Cursor = 0
	m.syncSelectedToAllCursor()
	label := m.All.Category
	if label == "" {
		label = "all"
	}
	m.Status = StatusBar{Text: fmt.Sprintf("category filter: %s", label), IsError: false}
}

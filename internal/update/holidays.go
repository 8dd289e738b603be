package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"annid/internal/presets"
)

func (m *Model) loadPresetCatalog() {
	catalog, err := presets.All()
	if err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("preset catalog failed: %v", err), IsError: true}
		return
	}
	items := make([]PresetItem, 0, len(catalog))
	ref := m.now()
	for _, p := range catalog {
		items = append(items, PresetItem{
			Name:    p.Name,
			NextDay: p.Anniversary(ref).Date.Format("2006-01-02"),
		})
	}
	m.Presets.Items = items
}

func (m Model) handlePresetsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.Presets.Cursor > 0 {
			m.Presets.Cursor--
		}
	case "down", "j":
		if m.Presets.Cursor < len(m.Presets.Items)-1 {
			m.Presets.Cursor++
		}
	case "enter":
		m.adoptPresetAtCursor()
	}
	return m
}

func (m *Model) adoptPresetAtCursor() {
	if m.Presets.Cursor < 0 || m.Presets.Cursor >= len(m.Presets.Items) {
		return
	}
	name := m.Presets.Items[m.Presets.Cursor].Name
	m.adoptPreset(name)
}

func (m *Model) adoptPreset(name string) {
	preset, ok := presets.Find(name)
	if !ok {
		m.Status = StatusBar{Text: fmt.Sprintf("unknown preset: %s", name), IsError: true}
		return
	}
	rec := preset.Anniversary(m.now())
	rec.ID = uuid.NewString()
	rec.CreatedAt = m.now()
	if err := m.createRecord(rec); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	m.CurrentView = ViewUpcoming
	m.Status = StatusBar{Text: fmt.Sprintf("adopted preset: %s", rec.Name), IsError: false}
}

package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"annid/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Upcoming, Action: "switch to Upcoming"},
		{Key: m.Keys.All, Action: "switch to All"},
		{Key: m.Keys.Trash, Action: "switch to Trash"},
		{Key: m.Keys.Presets, Action: "switch to Presets"},
		{Key: "/", Action: "open command palette"},
		{Key: "R", Action: "reload from store"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewUpcoming:
		return []KeyBinding{
			{Key: "a/enter", Action: "capture new record"},
			{Key: "j/k", Action: "move cursor"},
			{Key: "e", Action: "edit reminders"},
			{Key: "t", Action: "trash selected"},
		}
	case ViewAll:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "f", Action: "cycle category filter"},
			{Key: "e", Action: "edit reminders"},
			{Key: "t", Action: "trash selected"},
		}
	case ViewTrash:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "r", Action: "restore selected"},
			{Key: "x", Action: "purge selected"},
		}
	case ViewPresets:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "enter", Action: "adopt preset"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.viewBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.viewBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}

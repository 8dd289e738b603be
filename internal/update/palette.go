package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"annid/internal/commands"
	"annid/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			date, err := commands.ResolveDate(a.When, m.now())
			if err != nil {
				return commands.Result{}, err
			}
			rec := model.Anniversary{
				ID:        uuid.NewString(),
				Name:      a.Name,
				Category:  model.CategoryCustom,
				Date:      date,
				Reminder:  defaultReminder(),
				CreatedAt: m.now(),
			}
			if err := m.createRecord(rec); err != nil {
				return commands.Result{}, err
			}
			m.CurrentView = ViewUpcoming
			return commands.Result{Message: fmt.Sprintf("added: %s on %s", rec.Name, date.Format("2006-01-02"))}, nil
		},
		Remind: func(r commands.RemindArgs) (commands.Result, error) {
			rec, ok := m.targetRecord(r.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no record matches %q", r.Target)}
			}
			settings, err := reminderFromArgs(rec.Reminder, r)
			if err != nil {
				return commands.Result{}, err
			}
			rec.Reminder = settings
			if err := m.updateRecord(rec); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("reminders for %s: %s at %s", rec.Name, settings.Cycle, settings.TimeOfDay)}, nil
		},
		Trash: func(t commands.TrashArgs) (commands.Result, error) {
			rec, ok := m.targetRecord(t.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no record matches %q", t.Target)}
			}
			if err := m.trashRecord(rec.ID); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("trashed: %s", rec.Name)}, nil
		},
		Restore: func(r commands.RestoreArgs) (commands.Result, error) {
			rec, ok := findRecord(m.TrashRecords, r.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("nothing in trash matches %q", r.Target)}
			}
			if err := m.restoreRecord(rec.ID); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("restored: %s", rec.Name)}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			if s.Category != "" {
				m.CurrentView = ViewAll
				m.All.Category = s.Category
				m.All.Cursor = 0
				m.syncSelectedToAllCursor()
				return commands.Result{Message: fmt.Sprintf("show filter applied: category=%s", s.Category)}, nil
			}
			switch strings.ToLower(s.Subject) {
			case "trash":
				m.CurrentView = ViewTrash
			case "presets":
				m.CurrentView = ViewPresets
			case "all":
				m.CurrentView = ViewAll
				m.All.Category = ""
			default:
				m.CurrentView = ViewUpcoming
			}
			return commands.Result{Message: fmt.Sprintf("show %s", s.Subject)}, nil
		},
		Preset: func(p commands.PresetArgs) (commands.Result, error) {
			m.adoptPreset(p.Name)
			if m.Status.IsError {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: m.Status.Text}
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.notify("Command", res.Message, "info")
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

// targetRecord resolves a command target: the keyword "selected" means the
// current selection, anything else matches by id or name.
func (m Model) targetRecord(target string) (model.Anniversary, bool) {
	if strings.EqualFold(strings.TrimSpace(target), "selected") {
		return m.selectedRecord()
	}
	return findRecord(m.Records, target)
}

// reminderFromArgs overlays the non-empty command arguments onto the current
// settings and validates the result.
func reminderFromArgs(base model.ReminderSettings, args commands.RemindArgs) (model.ReminderSettings, error) {
	out := base
	out.Enabled = true
	if strings.EqualFold(args.Cycle, "off") {
		out.Enabled = false
		return out, nil
	}
	if args.Cycle != "" {
		cycle, customMonths, err := parseCycleArg(args.Cycle)
		if err != nil {
			return model.ReminderSettings{}, err
		}
		out.Cycle = cycle
		if cycle == model.CycleCustom && customMonths > 0 {
			out.CustomMonths = customMonths
		}
	}
	if args.Timings != "" {
		timings, err := parseTimingsArg(args.Timings)
		if err != nil {
			return model.ReminderSettings{}, err
		}
		out.Timings = timings
	}
	if args.TimeOfDay != "" {
		out.TimeOfDay = args.TimeOfDay
	}
	if err := out.Validate(); err != nil {
		return model.ReminderSettings{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
	}
	return out, nil
}

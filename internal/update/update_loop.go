package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"annid/internal/scheduler"
	"annid/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Checker != nil {
		return waitForReminderCmd(m.Checker.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer m.syncBubbleData()

	switch typed := msg.(type) {
	case tea.KeyMsg:
		m.ensureUpcomingState()
		m.ensureTrashState()

		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			next := m.handlePaletteKey(typed)
			return next, nil
		}

		if m.reminderEditor.Active {
			next := m.handleReminderEditorKey(typed)
			return next, nil
		}

		keyStr := typed.String()
		if m.CurrentView == ViewUpcoming && m.Upcoming.CaptureMode && keyStr != "ctrl+c" &&
			keyStr != m.Keys.Upcoming && keyStr != m.Keys.All && keyStr != m.Keys.Trash && keyStr != m.Keys.Presets &&
			keyStr != m.Keys.Help && keyStr != "/" && keyStr != m.Keys.Quit {
			return m.handleUpcomingKey(typed), nil
		}

		switch keyStr {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Upcoming:
			m.CurrentView = ViewUpcoming
			return m, nil
		case m.Keys.All:
			m.CurrentView = ViewAll
			return m, nil
		case m.Keys.Trash:
			m.CurrentView = ViewTrash
			return m, nil
		case m.Keys.Presets:
			m.CurrentView = ViewPresets
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "R":
			if !m.spinnerActive {
				m.spinnerActive = true
				m.refreshFromStore()
				m.Status = StatusBar{Text: "reload started", IsError: false}
				return m, tea.Batch(m.reloadSpinner.Tick, tea.Tick(time.Second, func(time.Time) tea.Msg { return SetStatusMsg{Text: "reload complete", IsError: false} }))
			}
			return m, nil
		case "e":
			if m.CurrentView == ViewUpcoming || m.CurrentView == ViewAll {
				m.openReminderEditor()
				return m, nil
			}
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		if m.CurrentView == ViewUpcoming {
			return m.handleUpcomingKey(typed), nil
		}
		if m.CurrentView == ViewAll {
			return m.handleAllKey(typed), nil
		}
		if m.CurrentView == ViewTrash {
			return m.handleTrashKey(typed), nil
		}
		if m.CurrentView == ViewPresets {
			return m.handlePresetsKey(typed), nil
		}
	case spinner.TickMsg:
		if m.spinnerActive {
			var cmd tea.Cmd
			m.reloadSpinner, cmd = m.reloadSpinner.Update(typed)
			return m, cmd
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		if strings.Contains(strings.ToLower(typed.Text), "reload complete") {
			m.spinnerActive = false
		}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case ReminderDueMsg:
		m.ReminderLog = append(m.ReminderLog, typed.Event)
		if len(m.ReminderLog) > 20 {
			m.ReminderLog = m.ReminderLog[len(m.ReminderLog)-20:]
		}
		m.applyReminderEvent(typed.Event)
		if m.Checker != nil {
			return m, waitForReminderCmd(m.Checker.C())
		}
		return m, nil
	case AcknowledgeReminderMsg:
		if typed.Key != "" {
			m.ReminderAck[typed.Key] = true
			if err := m.persistAcknowledgedState(); err != nil {
				m.Status = StatusBar{Text: fmt.Sprintf("acknowledge persist failed: %v", err), IsError: true}
				return m, nil
			}
			m.Status = StatusBar{Text: fmt.Sprintf("reminder acknowledged: %s", typed.Key), IsError: false}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewUpcoming:
		leftPane = m.renderUpcomingView()
		rightPane = m.renderDetailPane() + m.renderReminderEditorIfVisible() + m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewAll:
		leftPane = m.renderAllView()
		rightPane = m.renderDetailPane() + m.renderReminderEditorIfVisible() + m.renderHelpIfVisible()
	case ViewTrash:
		leftPane = m.renderTrashView()
		rightPane = m.renderHelpIfVisible()
	case ViewPresets:
		leftPane = m.renderPresetsView()
		rightPane = m.renderHelpIfVisible()
	}
	notificationView := ""
	if len(m.ReminderLog) > 0 {
		last := m.ReminderLog[len(m.ReminderLog)-1]
		notificationView = fmt.Sprintf("last-reminder: %s @ %s", last.Name, last.FiredAt.Format("15:04:05"))
	}
	if m.spinnerActive {
		spin := m.reloadSpinner.View()
		notificationView = strings.TrimSpace(strings.Join([]string{notificationView, "reload: " + spin + " running"}, "\n"))
	}
	notificationView = strings.TrimSpace(strings.Join([]string{
		notificationView,
		strings.TrimSpace(m.renderNotificationsView()),
	}, "\n"))

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("annid | view: %s | selected: %s", m.CurrentView, m.SelectedRecordID),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: notificationView,
		Footer:       fmt.Sprintf("keys: %s upcoming | %s all | %s trash | %s presets | / cmd | %s help | %s quit", m.Keys.Upcoming, m.Keys.All, m.Keys.Trash, m.Keys.Presets, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewUpcoming, ViewAll, ViewTrash, ViewPresets:
		return true
	default:
		return false
	}
}

func waitForReminderCmd(ch <-chan scheduler.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderDueMsg{Event: ev}
	}
}

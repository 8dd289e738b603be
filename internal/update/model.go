package update

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"annid/internal/model"
	"annid/internal/scheduler"
	"annid/internal/storage"
)

type View string

const (
	ViewUpcoming View = "Upcoming"
	ViewAll      View = "All"
	ViewTrash    View = "Trash"
	ViewPresets  View = "Presets"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Upcoming string
	All      string
	Trash    string
	Presets  string
	Help     string
	Quit     string
}

type UpcomingState struct {
	Input       string
	CaptureMode bool
	Cursor      int
}

type AllState struct {
	Cursor   int
	Category string
}

type TrashState struct {
	Cursor int
}

type PresetsState struct {
	Items  []PresetItem
	Cursor int
}

type PresetItem struct {
	Name    string
	NextDay string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type ReminderEditorState struct {
	Active           bool
	Field            string
	Cycle            string
	CustomMonthsText string
	TimingsText      string
	TimeText         string
	Err              string
	Preview          []string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type Model struct {
	CurrentView      View
	SelectedRecordID string
	Records          []model.Anniversary
	TrashRecords     []model.Anniversary
	Upcoming         UpcomingState
	All              AllState
	Trash            TrashState
	Presets          PresetsState
	Checker          *scheduler.Checker
	ReminderLog      []scheduler.Event
	ReminderAck      map[string]bool
	Palette          CommandPaletteState
	HelpVisible      bool
	Notifications    []Notification
	DesktopEnabled   bool
	notifier         DesktopNotifier
	Status           StatusBar
	Keys             GlobalKeyMap
	Quitting         bool
	LastError        error

	repo          storage.Repository
	stateFilePath string
	now           func() time.Time

	// Bubble components used for rich TUI controls
	upcomingList   list.Model
	allTable       table.Model
	quickAddInput  textinput.Model
	commandInput   textinput.Model
	notesArea      textarea.Model
	cycleProgress  progress.Model
	reloadSpinner  spinner.Model
	helpModel      help.Model
	detailViewport viewport.Model
	spinnerActive  bool

	reminderEditor ReminderEditorState
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type ReminderDueMsg struct {
	Event scheduler.Event
}

type AcknowledgeReminderMsg struct {
	Key string
}

func NewModel() Model {
	m := Model{
		CurrentView: ViewUpcoming,
		ReminderAck: make(map[string]bool),
		notifier:    NoopDesktopNotifier{},
		now:         func() time.Time { return time.Now().UTC() },
		Keys: GlobalKeyMap{
			Upcoming: "1",
			All:      "2",
			Trash:    "3",
			Presets:  "4",
			Help:     "?",
			Quit:     "q",
		},
		reminderEditor: ReminderEditorState{
			Field: editorFieldCycle,
			Cycle: string(model.CycleYearly),
		},
	}
	m.initBubbleComponents()
	m.loadPresetCatalog()
	m.syncBubbleData()
	return m
}

type RuntimeConfig struct {
	DesktopNotifications bool
	StateFilePath        string
}

func NewModelWithRuntime(repo storage.Repository, checker *scheduler.Checker, notifier DesktopNotifier, cfg RuntimeConfig) Model {
	m := NewModel()
	m.repo = repo
	m.Checker = checker
	m.DesktopEnabled = cfg.DesktopNotifications
	m.stateFilePath = strings.TrimSpace(cfg.StateFilePath)
	if notifier != nil {
		m.notifier = notifier
	}
	if m.stateFilePath != "" {
		if acked, err := loadAcknowledgedState(m.stateFilePath); err == nil {
			m.ReminderAck = acked
		}
	}
	m.refreshFromStore()
	return m
}

func (m *Model) initBubbleComponents() {
	m.upcomingList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.upcomingList.Title = "Upcoming (list)"
	m.upcomingList.SetShowHelp(false)
	m.upcomingList.SetFilteringEnabled(false)

	cols := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Category", Width: 10},
		{Title: "Cycle", Width: 12},
		{Title: "Name", Width: 24},
	}
	m.allTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(10))

	m.quickAddInput = textinput.New()
	m.quickAddInput.Prompt = "add> "
	m.quickAddInput.CharLimit = 256
	m.quickAddInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.notesArea = textarea.New()
	m.notesArea.SetWidth(54)
	m.notesArea.SetHeight(8)
	m.notesArea.ShowLineNumbers = false
	m.notesArea.Placeholder = "Notes (markdown)"

	m.cycleProgress = progress.New(progress.WithDefaultGradient())

	m.reloadSpinner = spinner.New()
	m.reloadSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.detailViewport = viewport.New(54, 12)
}

func (m *Model) syncBubbleData() {
	upcomingItems := make([]list.Item, 0, len(m.Records))
	for _, item := range m.upcomingItems() {
		desc := fmt.Sprintf("%s | %s", item.DueDate, item.Countdown)
		upcomingItems = append(upcomingItems, listItem{title: item.Name, description: desc})
	}
	m.upcomingList.SetItems(upcomingItems)
	if len(upcomingItems) > 0 {
		m.upcomingList.Select(m.Upcoming.Cursor)
	}

	rows := make([]table.Row, 0, len(m.Records))
	for _, rec := range m.allRecords() {
		rows = append(rows, table.Row{
			rec.Date.Format("2006-01-02"),
			string(rec.Category),
			string(rec.Reminder.Cycle),
			rec.Name,
		})
	}
	m.allTable.SetRows(rows)
	if len(rows) > 0 && m.All.Cursor < len(rows) {
		m.allTable.SetCursor(m.All.Cursor)
	}

	m.quickAddInput.SetValue(m.Upcoming.Input)
	m.commandInput.SetValue(m.Palette.Input)
	if m.CurrentView == ViewUpcoming && m.Upcoming.CaptureMode {
		m.quickAddInput.Focus()
	}
	if m.Palette.Active {
		m.commandInput.Focus()
	}

	if sel, ok := m.selectedRecord(); ok {
		md := sel.Notes
		if strings.TrimSpace(md) == "" {
			md = "_No notes_"
		}
		m.notesArea.SetValue(md)
		m.detailViewport.SetContent(renderMarkdownPreview(md))
		_ = m.cycleProgress.SetPercent(cycleElapsedFraction(sel, m.now()))
	}
}

func (m *Model) ensureUpcomingState() {
	if m.Upcoming.Cursor < 0 {
		m.Upcoming.Cursor = 0
	}
	if m.Upcoming.Cursor >= len(m.Records) && len(m.Records) > 0 {
		m.Upcoming.Cursor = len(m.Records) - 1
	}
	if len(m.Records) > 0 && m.SelectedRecordID == "" {
		m.syncSelectedToUpcomingCursor()
	}
}

func (m *Model) ensureTrashState() {
	if m.Trash.Cursor < 0 {
		m.Trash.Cursor = 0
	}
	if m.Trash.Cursor >= len(m.TrashRecords) && len(m.TrashRecords) > 0 {
		m.Trash.Cursor = len(m.TrashRecords) - 1
	}
}

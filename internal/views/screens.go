package views

import (
	"fmt"
	"strings"
)

type UpcomingItemData struct {
	ID        string
	Name      string
	Category  string
	DueDate   string
	DaysLeft  int
	Years     int
	Countdown string
}

type UpcomingPanelData struct {
	QuickAddView string
	CaptureMode  bool
	ListView     string
	Items        []UpcomingItemData
	SelectedID   string
}

type AllPanelData struct {
	TableView string
	Total     int
	Category  string
}

type TrashItemData struct {
	ID        string
	Name      string
	DeletedAt string
}

type TrashPanelData struct {
	Items      []TrashItemData
	SelectedID string
}

type PresetItemData struct {
	Name    string
	NextDay string
}

type PresetsPanelData struct {
	Items  []PresetItemData
	Cursor int
}

type DetailData struct {
	SelectedID        string
	Name              string
	Category          string
	OriginDate        string
	NextDue           string
	Countdown         string
	Cycle             string
	Timings           string
	TimeOfDay         string
	ReminderOn        bool
	ProgressView      string
	NotesEditorView   string
	MarkdownNotesView string
}

type ReminderEditorData struct {
	Active           bool
	Field            string
	Cycle            string
	CustomMonthsText string
	TimingsText      string
	TimeText         string
	ErrorText        string
	Preview          []string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderUpcomingPanel(data UpcomingPanelData) string {
	var b strings.Builder
	b.WriteString("upcoming:\n")
	if data.CaptureMode {
		b.WriteString(data.QuickAddView + "\n")
		b.WriteString("capture: <name> on <date> | [enter]save [esc]cancel\n")
	} else {
		b.WriteString("actions: [j/k]move [a]add [e]reminders [t]trash\n")
	}
	b.WriteString(data.ListView + "\n")
	if len(data.Items) == 0 {
		b.WriteString("(nothing coming up)")
		return strings.TrimSpace(b.String())
	}
	for _, item := range data.Items {
		cursor := " "
		if data.SelectedID == item.ID {
			cursor = ">"
		}
		line := fmt.Sprintf("%s %s %s (%s)", cursor, countdownBadge(item.DaysLeft), item.Name, item.Category)
		if item.Years > 0 {
			line += fmt.Sprintf(" turns %d", item.Years)
		}
		line += fmt.Sprintf(" — %s %s", item.DueDate, item.Countdown)
		b.WriteString(line + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderAllPanel(data AllPanelData) string {
	var b strings.Builder
	b.WriteString("all records:\n")
	b.WriteString("actions: [j/k]move [e]reminders [t]trash [R]reload\n")
	if data.Category != "" {
		b.WriteString(fmt.Sprintf("filter: category=%s\n", data.Category))
	}
	b.WriteString(data.TableView + "\n")
	b.WriteString(fmt.Sprintf("total: %d", data.Total))
	return strings.TrimSpace(b.String())
}

func RenderTrashPanel(data TrashPanelData) string {
	var b strings.Builder
	b.WriteString("trash:\n")
	b.WriteString("actions: [j/k]move [r]restore [x]purge\n")
	if len(data.Items) == 0 {
		b.WriteString("(trash is empty)")
		return b.String()
	}
	for _, item := range data.Items {
		cursor := " "
		if data.SelectedID == item.ID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s (deleted %s)\n", cursor, item.Name, item.DeletedAt))
	}
	return strings.TrimSpace(b.String())
}

func RenderPresetsPanel(data PresetsPanelData) string {
	var b strings.Builder
	b.WriteString("holiday presets:\n")
	b.WriteString("actions: [j/k]move [enter]adopt\n")
	if len(data.Items) == 0 {
		b.WriteString("(no presets available)")
		return b.String()
	}
	for i, item := range data.Items {
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s — next %s\n", cursor, item.Name, item.NextDay))
	}
	return strings.TrimSpace(b.String())
}

func RenderDetailPane(data DetailData) string {
	if strings.TrimSpace(data.SelectedID) == "" {
		return "details:\n(no selection)"
	}
	var b strings.Builder
	b.WriteString("details:\n")
	b.WriteString(fmt.Sprintf("name: %s\n", data.Name))
	b.WriteString(fmt.Sprintf("category: %s\n", data.Category))
	b.WriteString(fmt.Sprintf("origin: %s\n", data.OriginDate))
	if data.NextDue != "" {
		b.WriteString(fmt.Sprintf("next due: %s (%s)\n", data.NextDue, data.Countdown))
		b.WriteString(fmt.Sprintf("cycle progress: %s\n", data.ProgressView))
	}
	if data.ReminderOn {
		b.WriteString(fmt.Sprintf("reminders: %s at %s, offsets %s\n", data.Cycle, data.TimeOfDay, data.Timings))
	} else {
		b.WriteString("reminders: off\n")
	}
	b.WriteString("\nnotes-editor:\n")
	b.WriteString(data.NotesEditorView + "\n")
	b.WriteString("\nnotes-preview:\n")
	b.WriteString(data.MarkdownNotesView)
	return strings.TrimSpace(b.String())
}

func RenderReminderEditor(data ReminderEditorData) string {
	if !data.Active {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nreminder-editor:\n")
	b.WriteString("keys: [tab]cycle [up/down]field [enter]save [esc]close\n")
	b.WriteString(editorLine(data.Field, "cycle", data.Cycle))
	if data.Cycle == "custom" {
		b.WriteString(editorLine(data.Field, "months", data.CustomMonthsText))
	}
	b.WriteString(editorLine(data.Field, "offsets", data.TimingsText))
	b.WriteString(editorLine(data.Field, "time", data.TimeText))
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText + "\n")
	}
	if len(data.Preview) > 0 {
		b.WriteString("next dates:\n")
		for _, item := range data.Preview {
			b.WriteString("- " + item + "\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("\nnotification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func editorLine(active, name, value string) string {
	marker := " "
	if active == name {
		marker = ">"
	}
	return fmt.Sprintf("%s %s: %s\n", marker, name, value)
}

func countdownBadge(daysLeft int) string {
	switch {
	case daysLeft <= 0:
		return "[TODAY]"
	case daysLeft <= 7:
		return "[SOON]"
	default:
		return "[OK]"
	}
}

package update

import (
	"strings"
	"time"

	"annid/internal/views"
)

func (m Model) renderUpcomingView() string {
	return views.RenderUpcomingPanel(views.UpcomingPanelData{
		QuickAddView: m.quickAddInput.View(),
		CaptureMode:  m.Upcoming.CaptureMode,
		ListView:     m.upcomingList.View(),
		Items:        m.upcomingItems(),
		SelectedID:   m.SelectedRecordID,
	})
}

func (m Model) renderAllView() string {
	return views.RenderAllPanel(views.AllPanelData{
		TableView: m.allTable.View(),
		Total:     len(m.allRecords()),
		Category:  m.All.Category,
	})
}

func (m Model) renderTrashView() string {
	items := make([]views.TrashItemData, 0, len(m.TrashRecords))
	selectedID := ""
	for i, rec := range m.TrashRecords {
		deletedAt := ""
		if rec.DeletedAt != nil {
			deletedAt = rec.DeletedAt.Format("2006-01-02")
		}
		items = append(items, views.TrashItemData{
			ID:        rec.ID,
			Name:      rec.Name,
			DeletedAt: deletedAt,
		})
		if i == m.Trash.Cursor {
			selectedID = rec.ID
		}
	}
	return views.RenderTrashPanel(views.TrashPanelData{
		Items:      items,
		SelectedID: selectedID,
	})
}

func (m Model) renderPresetsView() string {
	items := make([]views.PresetItemData, 0, len(m.Presets.Items))
	for _, item := range m.Presets.Items {
		items = append(items, views.PresetItemData{Name: item.Name, NextDay: item.NextDay})
	}
	return views.RenderPresetsPanel(views.PresetsPanelData{
		Items:  items,
		Cursor: m.Presets.Cursor,
	})
}

func (m Model) renderDetailPane() string {
	selected, ok := m.selectedRecord()
	if !ok {
		return "details:\n(no selection)"
	}
	data := views.DetailData{
		SelectedID:        selected.ID,
		Name:              selected.Name,
		Category:          string(selected.Category),
		OriginDate:        selected.Date.Format("2006-01-02"),
		Cycle:             string(selected.Reminder.Cycle),
		Timings:           formatTimings(selected.Reminder.Timings),
		TimeOfDay:         selected.Reminder.TimeOfDay,
		ReminderOn:        selected.Reminder.Enabled,
		ProgressView:      m.cycleProgress.View(),
		NotesEditorView:   m.notesArea.View(),
		MarkdownNotesView: m.detailViewport.View(),
	}
	if due, dueOK := selected.NextDueDate(m.now()); dueOK {
		data.NextDue = due.Format("2006-01-02")
		if days, daysOK := selected.DaysUntil(m.now()); daysOK {
			data.Countdown = countdownText(days)
		}
	}
	return views.RenderDetailPane(data)
}

func (m Model) renderReminderEditorIfVisible() string {
	return views.RenderReminderEditor(views.ReminderEditorData{
		Active:           m.reminderEditor.Active,
		Field:            m.reminderEditor.Field,
		Cycle:            m.reminderEditor.Cycle,
		CustomMonthsText: m.reminderEditor.CustomMonthsText,
		TimingsText:      m.reminderEditor.TimingsText,
		TimeText:         m.reminderEditor.TimeText,
		ErrorText:        m.reminderEditor.Err,
		Preview:          m.reminderEditor.Preview,
	})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		_ = m.notifier.Send(n)
	}
}

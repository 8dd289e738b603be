package update

import (
	"fmt"

	"annid/internal/scheduler"
)

func reminderKey(ev scheduler.Event) string {
	return fmt.Sprintf("%s|%s|%d", ev.RecordID, ev.DueDate.Format("2006-01-02"), ev.DaysLeft)
}

func (m *Model) applyReminderEvent(ev scheduler.Event) {
	key := reminderKey(ev)
	if m.ReminderAck[key] {
		m.Status = StatusBar{Text: fmt.Sprintf("reminder suppressed (acknowledged): %s", ev.Name), IsError: false}
		return
	}
	text := reminderText(ev)
	m.Status = StatusBar{Text: text, IsError: false}
	m.notify("Reminder", text, "info")
}

func reminderText(ev scheduler.Event) string {
	switch ev.DaysLeft {
	case 0:
		return fmt.Sprintf("%s is today (%s)", ev.Name, ev.DueDate.Format("2006-01-02"))
	case 1:
		return fmt.Sprintf("%s is tomorrow (%s)", ev.Name, ev.DueDate.Format("2006-01-02"))
	default:
		return fmt.Sprintf("%s is in %d days (%s)", ev.Name, ev.DaysLeft, ev.DueDate.Format("2006-01-02"))
	}
}

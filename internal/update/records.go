package update

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"annid/internal/model"
	"annid/internal/storage"
	"annid/internal/views"
)

// refreshFromStore reloads the live and trashed record caches. Without a
// repository the in-memory slices are only re-sorted.
func (m *Model) refreshFromStore() {
	if m.repo != nil {
		ctx := context.Background()
		live := false
		rows, err := m.repo.ListAnniversaries(ctx, storage.ListFilter{Trashed: &live})
		if err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("load records failed: %v", err), IsError: true}
			return
		}
		m.Records = m.Records[:0]
		for _, row := range rows {
			m.Records = append(m.Records, storage.ToModel(row))
		}
		trashed := true
		rows, err = m.repo.ListAnniversaries(ctx, storage.ListFilter{Trashed: &trashed})
		if err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("load trash failed: %v", err), IsError: true}
			return
		}
		m.TrashRecords = m.TrashRecords[:0]
		for _, row := range rows {
			m.TrashRecords = append(m.TrashRecords, storage.ToModel(row))
		}
	}
	m.sortRecordsByDue()
	m.ensureUpcomingState()
	m.ensureTrashState()
}

func (m *Model) sortRecordsByDue() {
	now := m.now()
	sort.SliceStable(m.Records, func(i, j int) bool {
		di, iOK := m.Records[i].NextDueDate(now)
		dj, jOK := m.Records[j].NextDueDate(now)
		if iOK != jOK {
			return iOK
		}
		if !iOK {
			return m.Records[i].Name < m.Records[j].Name
		}
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return m.Records[i].Name < m.Records[j].Name
	})
}

func (m Model) upcomingItems() []views.UpcomingItemData {
	now := m.now()
	out := make([]views.UpcomingItemData, 0, len(m.Records))
	for _, rec := range m.Records {
		item := views.UpcomingItemData{
			ID:        rec.ID,
			Name:      rec.Name,
			Category:  string(rec.Category),
			DueDate:   "none scheduled",
			Countdown: "",
			DaysLeft:  -1,
		}
		if due, ok := rec.NextDueDate(now); ok {
			days, _ := rec.DaysUntil(now)
			item.DueDate = due.Format("2006-01-02")
			item.DaysLeft = days
			item.Countdown = countdownText(days)
			item.Years = rec.Years(due)
		}
		out = append(out, item)
	}
	return out
}

func (m Model) allRecords() []model.Anniversary {
	if m.All.Category == "" {
		return m.Records
	}
	out := make([]model.Anniversary, 0, len(m.Records))
	for _, rec := range m.Records {
		if string(rec.Category) == m.All.Category {
			out = append(out, rec)
		}
	}
	return out
}

func (m Model) selectedRecord() (model.Anniversary, bool) {
	if m.SelectedRecordID == "" {
		return model.Anniversary{}, false
	}
	for _, rec := range m.Records {
		if rec.ID == m.SelectedRecordID {
			return rec, true
		}
	}
	return model.Anniversary{}, false
}

func (m *Model) syncSelectedToUpcomingCursor() {
	if m.Upcoming.Cursor >= 0 && m.Upcoming.Cursor < len(m.Records) {
		m.SelectedRecordID = m.Records[m.Upcoming.Cursor].ID
	}
}

func (m *Model) syncSelectedToAllCursor() {
	filtered := m.allRecords()
	if m.All.Cursor >= 0 && m.All.Cursor < len(filtered) {
		m.SelectedRecordID = filtered[m.All.Cursor].ID
	}
}

// findRecord matches by exact id first, then case-insensitive name among the
// given slice.
func findRecord(records []model.Anniversary, target string) (model.Anniversary, bool) {
	trimmed := strings.TrimSpace(target)
	if trimmed == "" {
		return model.Anniversary{}, false
	}
	for _, rec := range records {
		if rec.ID == trimmed {
			return rec, true
		}
	}
	for _, rec := range records {
		if strings.EqualFold(rec.Name, trimmed) {
			return rec, true
		}
	}
	return model.Anniversary{}, false
}

func (m *Model) createRecord(rec model.Anniversary) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if m.repo != nil {
		if err := m.repo.CreateAnniversary(context.Background(), storage.FromModel(rec)); err != nil {
			return err
		}
	}
	m.Records = append(m.Records, rec)
	m.sortRecordsByDue()
	for i, existing := range m.Records {
		if existing.ID == rec.ID {
			m.Upcoming.Cursor = i
			break
		}
	}
	m.SelectedRecordID = rec.ID
	return nil
}

func (m *Model) updateRecord(rec model.Anniversary) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if m.repo != nil {
		if err := m.repo.UpdateAnniversary(context.Background(), storage.FromModel(rec)); err != nil {
			return err
		}
	}
	for i := range m.Records {
		if m.Records[i].ID == rec.ID {
			m.Records[i] = rec
			break
		}
	}
	m.sortRecordsByDue()
	return nil
}

func (m *Model) trashRecord(id string) error {
	at := m.now()
	if m.repo != nil {
		if err := m.repo.TrashAnniversary(context.Background(), id, at); err != nil {
			return err
		}
	}
	for i := range m.Records {
		if m.Records[i].ID == id {
			rec := m.Records[i]
			rec.DeletedAt = &at
			m.Records = append(m.Records[:i], m.Records[i+1:]...)
			m.TrashRecords = append(m.TrashRecords, rec)
			break
		}
	}
	if m.SelectedRecordID == id {
		m.SelectedRecordID = ""
	}
	m.ensureUpcomingState()
	return nil
}

func (m *Model) restoreRecord(id string) error {
	if m.repo != nil {
		if err := m.repo.RestoreAnniversary(context.Background(), id); err != nil {
			return err
		}
	}
	for i := range m.TrashRecords {
		if m.TrashRecords[i].ID == id {
			rec := m.TrashRecords[i]
			rec.DeletedAt = nil
			m.TrashRecords = append(m.TrashRecords[:i], m.TrashRecords[i+1:]...)
			m.Records = append(m.Records, rec)
			break
		}
	}
	m.sortRecordsByDue()
	m.ensureTrashState()
	return nil
}

func (m *Model) purgeRecord(id string) error {
	if m.repo != nil {
		if err := m.repo.PurgeAnniversary(context.Background(), id); err != nil {
			return err
		}
	}
	for i := range m.TrashRecords {
		if m.TrashRecords[i].ID == id {
			m.TrashRecords = append(m.TrashRecords[:i], m.TrashRecords[i+1:]...)
			break
		}
	}
	m.ensureTrashState()
	return nil
}

func countdownText(days int) string {
	switch {
	case days < 0:
		return ""
	case days == 0:
		return "today"
	case days == 1:
		return "in 1 day"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}

// cycleElapsedFraction reports how far the current reminder cycle has
// progressed, 0 when the record has no repeating cycle.
func cycleElapsedFraction(rec model.Anniversary, now time.Time) float64 {
	interval := rec.Reminder.IntervalMonths()
	if interval <= 0 {
		return 0
	}
	next, ok := rec.NextDueDate(now)
	if !ok {
		return 0
	}
	prev := next.AddDate(0, -interval, 0)
	total := next.Sub(prev)
	if total <= 0 {
		return 0
	}
	elapsed := now.Sub(prev)
	pct := float64(elapsed) / float64(total)
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	return pct
}

package storage

import "time"

// Anniversary is the storage shape of a record: reminder settings are
// flattened into columns and timings are kept as comma-separated text.
type Anniversary struct {
	ID              string
	Name            string
	Category        string
	Date            time.Time
	Notes           string
	ReminderEnabled bool
	ReminderCycle   string
	CustomMonths    int
	Timings         string
	TimeOfDay       string
	CreatedAt       time.Time
	DeletedAt       *time.Time
}

// ListFilter narrows ListAnniversaries. Trashed nil returns every record,
// true only trashed ones, false only live ones.
type ListFilter struct {
	Category string
	Trashed  *bool
	Limit    int
	Offset   int
}

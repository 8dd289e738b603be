package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

const anniversaryColumns = `id, name, category, date, notes, reminder_enabled, reminder_cycle, custom_months, timings, time_of_day, created_at, deleted_at`

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) DB() *sql.DB {
	return r.db
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateAnniversary(ctx context.Context, in Anniversary) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO anniversaries (`+anniversaryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Name, in.Category, mustTime(in.Date), in.Notes,
		boolInt(in.ReminderEnabled), in.ReminderCycle, in.CustomMonths, in.Timings, in.TimeOfDay,
		mustTime(in.CreatedAt), nullTime(in.DeletedAt),
	)
	return err
}

func (r *SQLiteRepository) GetAnniversary(ctx context.Context, id string) (Anniversary, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+anniversaryColumns+`
		FROM anniversaries WHERE id = ?`, id)
	item, err := scanAnniversary(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Anniversary{}, ErrNotFound
		}
		return Anniversary{}, err
	}
	return item, nil
}

func (r *SQLiteRepository) UpdateAnniversary(ctx context.Context, in Anniversary) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE anniversaries
		SET name = ?, category = ?, date = ?, notes = ?, reminder_enabled = ?, reminder_cycle = ?, custom_months = ?, timings = ?, time_of_day = ?
		WHERE id = ?`,
		in.Name, in.Category, mustTime(in.Date), in.Notes,
		boolInt(in.ReminderEnabled), in.ReminderCycle, in.CustomMonths, in.Timings, in.TimeOfDay,
		in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListAnniversaries(ctx context.Context, filter ListFilter) ([]Anniversary, error) {
	query := `SELECT ` + anniversaryColumns + ` FROM anniversaries`
	clauses := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if filter.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Trashed != nil {
		if *filter.Trashed {
			clauses = append(clauses, "deleted_at IS NOT NULL")
		} else {
			clauses = append(clauses, "deleted_at IS NULL")
		}
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY date ASC, name ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Anniversary, 0)
	for rows.Next() {
		item, scanErr := scanAnniversary(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) TrashAnniversary(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE anniversaries SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		mustTime(at), id,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) RestoreAnniversary(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE anniversaries SET deleted_at = NULL WHERE id = ? AND deleted_at IS NOT NULL`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) PurgeAnniversary(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM anniversaries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) PurgeTrashedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM anniversaries WHERE deleted_at IS NOT NULL AND deleted_at < ?`,
		mustTime(cutoff),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func nullTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.UTC().Format(sqliteTimeLayout)
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseNullableTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	tm, err := time.Parse(sqliteTimeLayout, v.String)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnniversary(s scanner) (Anniversary, error) {
	var out Anniversary
	var date string
	var enabled int
	var created string
	var deleted sql.NullString
	if err := s.Scan(
		&out.ID, &out.Name, &out.Category, &date, &out.Notes,
		&enabled, &out.ReminderCycle, &out.CustomMonths, &out.Timings, &out.TimeOfDay,
		&created, &deleted,
	); err != nil {
		return Anniversary{}, err
	}
	parsedDate, err := parseRequiredTime(date)
	if err != nil {
		return Anniversary{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Anniversary{}, err
	}
	deletedAt, err := parseNullableTime(deleted)
	if err != nil {
		return Anniversary{}, err
	}
	out.Date = parsedDate
	out.ReminderEnabled = enabled == 1
	out.CreatedAt = createdAt
	out.DeletedAt = deletedAt
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Package storage persists user-marked events (favorites, bookmarks)
// in SQLite.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"HistoryScanner/internal/domain"
	"HistoryScanner/internal/ports"
)

// Marking kinds.
const (
	KindFavorite = "favorite"
	KindBookmark = "bookmark"
)

const markedEventsTable = "marked_events"

// SQLiteRepository stores event snapshots keyed by (kind, year, text).
type SQLiteRepository struct {
	db *sql.DB
}

var _ ports.FavoritesRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository wires a sql.DB opened with the sqlite driver.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Init creates the backing table when absent.
func (r *SQLiteRepository) Init(ctx context.Context) error {
	if r.db == nil {
		return nil
	}

	const schema = `CREATE TABLE IF NOT EXISTS marked_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL,
		year TEXT NOT NULL,
		text TEXT NOT NULL,
		source TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		verified INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (kind, year, text)
	)`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create marked_events: %w", err)
	}

	return nil
}

// Toggle flips the marked state of an event and reports whether it is
// marked afterwards.
func (r *SQLiteRepository) Toggle(ctx context.Context, kind string, event domain.Event) (bool, error) {
	if r.db == nil {
		return false, fmt.Errorf("repository not initialized")
	}

	query, args, err := sq.Select("id").
		From(markedEventsTable).
		Where(sq.Eq{"kind": kind, "year": event.Year, "text": event.Text}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build select: %w", err)
	}

	var id int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	switch {
	case err == sql.ErrNoRows:
		return true, r.insert(ctx, kind, event)
	case err != nil:
		return false, fmt.Errorf("query marked: %w", err)
	default:
		return false, r.delete(ctx, id)
	}
}

// List returns marked events of one kind, most recently marked first.
func (r *SQLiteRepository) List(ctx context.Context, kind string) ([]domain.Event, error) {
	if r.db == nil {
		return nil, fmt.Errorf("repository not initialized")
	}

	query, args, err := sq.Select("year", "text", "source", "category", "verified").
		From(markedEventsTable).
		Where(sq.Eq{"kind": kind}).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query marked events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var event domain.Event
		var category string
		if err := rows.Scan(&event.Year, &event.Text, &event.Source, &category, &event.Verified); err != nil {
			return nil, fmt.Errorf("scan marked event: %w", err)
		}
		event.Category = domain.Category(category)
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return events, nil
}

func (r *SQLiteRepository) insert(ctx context.Context, kind string, event domain.Event) error {
	query, args, err := sq.Insert(markedEventsTable).
		Columns("kind", "year", "text", "source", "category", "verified").
		Values(kind, event.Year, event.Text, event.Source, string(event.Category), event.Verified).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert marked event: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) delete(ctx context.Context, id int64) error {
	query, args, err := sq.Delete(markedEventsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete marked event: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/woutmeijer/bouwkost/internal/db"
	"github.com/woutmeijer/bouwkost/internal/domain"
)

// SQLiteRecentFileRepo implements RecentFileRepo using a SQLite database.
type SQLiteRecentFileRepo struct {
	db db.DBTX
}

// NewSQLiteRecentFileRepo creates a new SQLiteRecentFileRepo.
func NewSQLiteRecentFileRepo(db db.DBTX) *SQLiteRecentFileRepo {
	return &SQLiteRecentFileRepo{db: db}
}

// Touch inserts the file or refreshes its name and last-opened timestamp.
func (r *SQLiteRecentFileRepo) Touch(ctx context.Context, f *domain.RecentFile) error {
	query := `INSERT INTO recent_files (path, schedule_name, last_opened_at)
		VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET schedule_name = excluded.schedule_name,
			last_opened_at = excluded.last_opened_at`
	_, err := r.db.ExecContext(ctx, query,
		f.Path,
		f.ScheduleName,
		f.LastOpenedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("touching recent file: %w", err)
	}
	return nil
}

func (r *SQLiteRecentFileRepo) List(ctx context.Context, limit int) ([]*domain.RecentFile, error) {
	query := `SELECT path, schedule_name, last_opened_at FROM recent_files
		ORDER BY last_opened_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent files: %w", err)
	}
	defer rows.Close()

	var files []*domain.RecentFile
	for rows.Next() {
		var f domain.RecentFile
		var openedAtStr string
		if err := rows.Scan(&f.Path, &f.ScheduleName, &openedAtStr); err != nil {
			return nil, fmt.Errorf("scanning recent file row: %w", err)
		}
		f.LastOpenedAt, err = time.Parse(time.RFC3339, openedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing last_opened_at: %w", err)
		}
		files = append(files, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recent files: %w", err)
	}
	return files, nil
}

func (r *SQLiteRecentFileRepo) Remove(ctx context.Context, path string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM recent_files WHERE path = ?`, path); err != nil {
		return fmt.Errorf("removing recent file: %w", err)
	}
	return nil
}

// Prune drops everything beyond the keep most recently opened files.
func (r *SQLiteRecentFileRepo) Prune(ctx context.Context, keep int) error {
	query := `DELETE FROM recent_files WHERE path NOT IN (
		SELECT path FROM recent_files ORDER BY last_opened_at DESC LIMIT ?
	)`
	if _, err := r.db.ExecContext(ctx, query, keep); err != nil {
		return fmt.Errorf("pruning recent files: %w", err)
	}
	return nil
}

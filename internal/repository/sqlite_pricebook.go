package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/woutmeijer/bouwkost/internal/db"
	"github.com/woutmeijer/bouwkost/internal/domain"
)

// priceBookColumns is the canonical SELECT column list for price_book_entries.
const priceBookColumns = `id, code, name, description, sfb_code, quantity_kind,
		unit_price, created_at, updated_at`

// SQLitePriceBookRepo implements PriceBookRepo using a SQLite database.
type SQLitePriceBookRepo struct {
	db db.DBTX
}

// NewSQLitePriceBookRepo creates a new SQLitePriceBookRepo.
func NewSQLitePriceBookRepo(db db.DBTX) *SQLitePriceBookRepo {
	return &SQLitePriceBookRepo{db: db}
}

func (r *SQLitePriceBookRepo) Create(ctx context.Context, e *domain.PriceBookEntry) error {
	query := `INSERT INTO price_book_entries (id, code, name, description, sfb_code,
		quantity_kind, unit_price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Code,
		e.Name,
		e.Description,
		e.SFBCode,
		string(e.Kind),
		e.UnitPrice,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting price book entry: %w", err)
	}
	return nil
}

func (r *SQLitePriceBookRepo) GetByID(ctx context.Context, id string) (*domain.PriceBookEntry, error) {
	query := `SELECT ` + priceBookColumns + ` FROM price_book_entries WHERE id = ?`
	return r.scanEntry(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLitePriceBookRepo) FindByCode(ctx context.Context, code string) (*domain.PriceBookEntry, error) {
	query := `SELECT ` + priceBookColumns + ` FROM price_book_entries WHERE code = ?`
	return r.scanEntry(r.db.QueryRowContext(ctx, query, code))
}

func (r *SQLitePriceBookRepo) List(ctx context.Context) ([]*domain.PriceBookEntry, error) {
	query := `SELECT ` + priceBookColumns + ` FROM price_book_entries ORDER BY code, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing price book entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLitePriceBookRepo) ListByCodePrefix(ctx context.Context, prefix string) ([]*domain.PriceBookEntry, error) {
	query := `SELECT ` + priceBookColumns + ` FROM price_book_entries
		WHERE code LIKE ? || '%' ORDER BY code, name`
	rows, err := r.db.QueryContext(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("listing price book entries by prefix: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLitePriceBookRepo) Update(ctx context.Context, e *domain.PriceBookEntry) error {
	query := `UPDATE price_book_entries SET code = ?, name = ?, description = ?,
		sfb_code = ?, quantity_kind = ?, unit_price = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		e.Code,
		e.Name,
		e.Description,
		e.SFBCode,
		string(e.Kind),
		e.UnitPrice,
		e.UpdatedAt.Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating price book entry: %w", err)
	}
	return nil
}

func (r *SQLitePriceBookRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM price_book_entries WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting price book entry: %w", err)
	}
	return nil
}

// scanEntry scans a single entry from a *sql.Row.
func (r *SQLitePriceBookRepo) scanEntry(row *sql.Row) (*domain.PriceBookEntry, error) {
	var e domain.PriceBookEntry
	var kindStr, createdAtStr, updatedAtStr string

	err := row.Scan(&e.ID, &e.Code, &e.Name, &e.Description, &e.SFBCode,
		&kindStr, &e.UnitPrice, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("price book entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning price book entry: %w", err)
	}
	return r.populateEntry(&e, kindStr, createdAtStr, updatedAtStr)
}

// scanEntries scans multiple entries from *sql.Rows.
func (r *SQLitePriceBookRepo) scanEntries(rows *sql.Rows) ([]*domain.PriceBookEntry, error) {
	var entries []*domain.PriceBookEntry
	for rows.Next() {
		var e domain.PriceBookEntry
		var kindStr, createdAtStr, updatedAtStr string

		err := rows.Scan(&e.ID, &e.Code, &e.Name, &e.Description, &e.SFBCode,
			&kindStr, &e.UnitPrice, &createdAtStr, &updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning price book entry row: %w", err)
		}
		entry, err := r.populateEntry(&e, kindStr, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating price book entries: %w", err)
	}
	return entries, nil
}

// populateEntry fills in parsed fields after scanning raw strings.
func (r *SQLitePriceBookRepo) populateEntry(e *domain.PriceBookEntry, kindStr, createdAtStr, updatedAtStr string) (*domain.PriceBookEntry, error) {
	e.Kind = domain.ParseQuantityKind(kindStr)

	var parseErr error
	e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	e.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return e, nil
}

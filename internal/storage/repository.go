// Package storage is the SQLite persistence backend.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"fintrack/internal/core"
	"fintrack/internal/store"

	_ "modernc.org/sqlite"
)

const userSlotKey = "user"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Add implements store.TransactionWriter.
func (r *SQLiteRepository) Add(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (id, title, amount_cents, type, category, date, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Amount.Cents, string(t.Type), t.Category, t.Date.String(), t.Description)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", t.ID,
		"title", t.Title,
		"amount_cents", t.Amount.Cents,
		"type", t.Type,
		"category", t.Category)
	return nil
}

// List implements store.TransactionLister: full ordered list, newest first.
func (r *SQLiteRepository) List(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, amount_cents, type, category, date, description
		 FROM transactions
		 ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

// Get loads a single transaction by ID; used by the sync worker.
func (r *SQLiteRepository) Get(ctx context.Context, id string) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, amount_cents, type, category, date, description
		 FROM transactions WHERE id = ?`, id)
	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, store.ErrNotFound
	}
	return t, err
}

// Delete implements store.TransactionDeleter.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transaction rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// GetUser implements store.UserStore. A missing or corrupt slot reads as
// "no user", matching the persisted-state contract.
func (r *SQLiteRepository) GetUser(ctx context.Context) (core.User, bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM slots WHERE key = ?`, userSlotKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return core.User{}, false, nil
	}
	if err != nil {
		return core.User{}, false, fmt.Errorf("read user slot: %w", err)
	}
	var u core.User
	if json.Unmarshal([]byte(raw), &u) != nil || u.ID == "" {
		return core.User{}, false, nil
	}
	return u, true, nil
}

// PutUser implements store.UserStore.
func (r *SQLiteRepository) PutUser(ctx context.Context, u core.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user slot: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		userSlotKey, string(data))
	if err != nil {
		return fmt.Errorf("write user slot: %w", err)
	}
	return nil
}

// DeleteUser implements store.UserStore.
func (r *SQLiteRepository) DeleteUser(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, userSlotKey); err != nil {
		return fmt.Errorf("delete user slot: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (core.Transaction, error) {
	var (
		t       core.Transaction
		cents   int64
		typ     string
		dateStr string
	)
	if err := row.Scan(&t.ID, &t.Title, &cents, &typ, &t.Category, &dateStr, &t.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Transaction{}, err
		}
		return core.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}
	t.Amount = core.Money{Cents: cents}
	t.Type = core.TransactionType(typ)
	date, err := core.ParseDate(dateStr)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse stored date %q: %w", dateStr, err)
	}
	t.Date = date
	return t, nil
}

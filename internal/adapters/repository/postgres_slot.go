package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const DefaultSlotTable = "habit_slots"

var _ domain.Slot = (*PostgresSlot)(nil)

// PostgresSlot keeps the payload in one row of a key/value table.
type PostgresSlot struct {
	db    *sqlx.DB
	table string
	key   string
}

func NewPostgresSlot(db *sqlx.DB, table, key string) *PostgresSlot {
	if table == "" {
		table = DefaultSlotTable
	}
	return &PostgresSlot{
		db:    db,
		table: pq.QuoteIdentifier(table),
		key:   key,
	}
}

func (s *PostgresSlot) Name() string {
	return "postgres"
}

func (s *PostgresSlot) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s (
            key        TEXT PRIMARY KEY,
            value      TEXT NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`, s.table)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create slot table: %w", err)
	}
	return nil
}

func (s *PostgresSlot) Read(ctx context.Context) ([]byte, error) {
	var value string
	query := fmt.Sprintf(`SELECT value FROM %s WHERE key = $1`, s.table)

	err := s.db.GetContext(ctx, &value, query, s.key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotEmpty
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return []byte(value), nil
}

func (s *PostgresSlot) Write(ctx context.Context, data []byte) error {
	query := fmt.Sprintf(`
        INSERT INTO %s (key, value, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (key) DO UPDATE
        SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`, s.table)

	if _, err := s.db.ExecContext(ctx, query, s.key, string(data)); err != nil {
		return fmt.Errorf("failed to upsert slot: %w", err)
	}
	return nil
}

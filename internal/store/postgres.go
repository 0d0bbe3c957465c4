package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/suis3/catalog/common/db"
	"github.com/suis3/catalog/common/logger"
	"github.com/suis3/catalog/internal/catalog"
)

// PostgresStore keeps the latest catalog snapshot as a single JSONB row.
// One catalog instance owns one row; concurrent daemons against the same
// row are not supported (the catalog is a single-writer aggregate).
type PostgresStore struct {
	db  *db.DB
	log *logger.Logger
}

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS catalog_state (
	id         INT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
	snapshot   JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// NewPostgresStore creates the store and ensures the snapshot table exists.
func NewPostgresStore(ctx context.Context, database *db.DB, log *logger.Logger) (*PostgresStore, error) {
	if _, err := database.Exec(ctx, snapshotSchema); err != nil {
		return nil, fmt.Errorf("create catalog_state table: %w", err)
	}
	return &PostgresStore{
		db:  database,
		log: log,
	}, nil
}

// Save upserts the snapshot row.
func (s *PostgresStore) Save(ctx context.Context, snap *catalog.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO catalog_state (id, snapshot, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET snapshot = EXCLUDED.snapshot, updated_at = now()`,
		data,
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	s.log.Debug("snapshot saved", "buckets", len(snap.Buckets))
	return nil
}

// Load reads the snapshot row if one exists.
func (s *PostgresStore) Load(ctx context.Context) (*catalog.Snapshot, bool, error) {
	var data []byte
	err := s.db.QueryRow(ctx, `SELECT snapshot FROM catalog_state WHERE id = 1`).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load snapshot: %w", err)
	}

	var snap catalog.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &snap, true, nil
}

func (s *PostgresStore) Close() {
	s.db.Close()
}

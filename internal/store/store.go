// Package store persists catalog snapshots so a restarted daemon comes
// back with the namespace it had. Saving happens after a mutation, outside
// the catalog's critical section, and is best-effort bookkeeping: it is
// not a transaction log and provides no cross-call atomicity.
package store

import (
	"context"

	"github.com/suis3/catalog/internal/catalog"
)

// Store saves and loads catalog snapshots.
type Store interface {
	// Save persists the snapshot, replacing any previous one.
	Save(ctx context.Context, snap *catalog.Snapshot) error

	// Load returns the last saved snapshot, or found=false if none exists.
	Load(ctx context.Context) (snap *catalog.Snapshot, found bool, err error)

	Close()
}

// NoopStore discards snapshots. Used when persistence is disabled.
type NoopStore struct{}

func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

func (s *NoopStore) Save(ctx context.Context, snap *catalog.Snapshot) error {
	return nil
}

func (s *NoopStore) Load(ctx context.Context) (*catalog.Snapshot, bool, error) {
	return nil, false, nil
}

func (s *NoopStore) Close() {}

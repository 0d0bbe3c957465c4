package handlers

import (
	"context"

	"github.com/suis3/catalog/common/logger"
	"github.com/suis3/catalog/internal/catalog"
	"github.com/suis3/catalog/internal/store"
)

// Persister writes a catalog snapshot after each successful mutation.
// Saving runs outside the catalog's critical section and is best-effort:
// a failed save is logged and the next mutation tries again with the
// then-current state.
type Persister struct {
	catalog *catalog.Catalog
	store   store.Store
	log     *logger.Logger
}

func NewPersister(cat *catalog.Catalog, st store.Store, log *logger.Logger) *Persister {
	return &Persister{
		catalog: cat,
		store:   st,
		log:     log,
	}
}

// AfterMutation snapshots the catalog and saves it.
func (p *Persister) AfterMutation(ctx context.Context) {
	snap := p.catalog.Snapshot()
	if err := p.store.Save(ctx, snap); err != nil {
		p.log.Error("snapshot save failed", "error", err)
	}
}

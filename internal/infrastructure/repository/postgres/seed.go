package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/yldraft/olympic-draft/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the built-in event catalog into an empty database.
// A non-empty events table means the catalog has been ingested already.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM events`); err != nil {
		return fmt.Errorf("count events for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	repo := NewEventRepository(db)
	if err := repo.UpsertCatalog(ctx, memory.SeedEvents(), memory.SeedEntries()); err != nil {
		return fmt.Errorf("seed event catalog: %w", err)
	}

	return nil
}

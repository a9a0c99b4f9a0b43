package sqldb

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrationFS embed.FS

// Migrate applies all pending migrations for the DB's dialect. Applied
// versions are tracked by goose, so running it again is a no-op.
func (d *DB) Migrate(ctx context.Context) error {
	fsys, err := fs.Sub(migrationFS, path.Join("migrations", d.driver))
	if err != nil {
		return fmt.Errorf("migrations for %s: %w", d.driver, err)
	}

	provider, err := goose.NewProvider(drivers[d.driver].goose, d.SqlDB, fsys)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, r := range results {
		slog.InfoContext(ctx, "migration applied",
			"driver", d.driver,
			"version", r.Source.Version,
			"file", r.Source.Path,
			"duration", r.Duration,
		)
	}
	return nil
}

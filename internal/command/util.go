package command

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/msomdec/course-api/internal/config"
	"github.com/msomdec/course-api/internal/repository/sqldb"
)

type configKey struct{}

func configFrom(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(configKey{}).(*config.Config)
	return cfg
}

// openDatabase connects to the configured database and applies pending
// migrations.
func openDatabase(ctx context.Context, cfg *config.Config) (*sqldb.DB, error) {
	db, err := sqldb.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-dev"
	}
	ver := "unknown"
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			ver = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if dirty {
		ver += "-dirty"
	}
	return ver
}

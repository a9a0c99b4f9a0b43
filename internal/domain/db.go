package domain

import "context"

// Database defines lifecycle operations for the underlying database.
// Each implementation owns its migration files per dialect, so the
// backend can be swapped without touching services or handlers.
type Database interface {
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

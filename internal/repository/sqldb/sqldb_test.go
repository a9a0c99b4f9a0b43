package sqldb_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/msomdec/course-api/internal/domain"
	"github.com/msomdec/course-api/internal/repository/sqldb"
)

// Verify that *sqldb.DB implements domain.Database at compile time.
var _ domain.Database = (*sqldb.DB)(nil)

func newTestDB(t *testing.T) *sqldb.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqldb.Open(context.Background(), sqldb.DriverSQLite, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sqldb.Open(context.Background(), sqldb.DriverSQLite, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file was not created")
	}

	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}

	var fkEnabled int
	if err := db.SqlDB.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled); err != nil {
		t.Fatalf("check foreign_keys: %v", err)
	}
	if fkEnabled != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", fkEnabled)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := sqldb.Open(context.Background(), "oracle", "whatever"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
	if sqldb.SupportedDriver("oracle") {
		t.Fatal("oracle should not be supported")
	}
	for _, d := range []string{sqldb.DriverSQLite, sqldb.DriverPostgres, sqldb.DriverMySQL} {
		if !sqldb.SupportedDriver(d) {
			t.Fatalf("expected %s to be supported", d)
		}
	}
}

func TestMigrate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := db.SqlDB.ExecContext(ctx,
		"INSERT INTO users (first_name, last_name, email_address, password) VALUES (?, ?, ?, ?)",
		"Test", "User", "test@example.com", "hash123",
	)
	if err != nil {
		t.Fatalf("insert into users: %v", err)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Second run should be a no-op.
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate (idempotent): %v", err)
	}

	var count int
	err := db.SqlDB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM goose_db_version WHERE version_id > 0").Scan(&count)
	if err != nil {
		t.Fatalf("count goose_db_version: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 migration records, got %d", count)
	}
}

func TestForeignKeyEnforced(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := db.SqlDB.ExecContext(ctx,
		"INSERT INTO courses (user_id, title, description) VALUES (?, ?, ?)",
		999, "Orphan", "No owner",
	)
	if err == nil {
		t.Fatal("expected foreign key violation inserting a course without an owner")
	}
}

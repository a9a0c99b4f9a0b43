// Package sqldb implements the domain repositories on top of bun, for
// SQLite (default), PostgreSQL and MySQL.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/schema"

	_ "github.com/go-sql-driver/mysql" // registers "mysql"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	_ "modernc.org/sqlite"             // registers "sqlite"
)

// Supported driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// DB wraps a database handle and exposes the repositories built on it.
// It implements domain.Database.
type DB struct {
	SqlDB  *sql.DB
	bun    *bun.DB
	driver string
}

type driverInfo struct {
	sqlName string
	dialect func() schema.Dialect
	goose   goose.Dialect
}

var drivers = map[string]driverInfo{
	DriverSQLite: {
		sqlName: "sqlite",
		dialect: func() schema.Dialect { return sqlitedialect.New() },
		goose:   goose.DialectSQLite3,
	},
	DriverPostgres: {
		// The pgx stdlib registers its driver as "pgx".
		sqlName: "pgx",
		dialect: func() schema.Dialect { return pgdialect.New() },
		goose:   goose.DialectPostgres,
	},
	DriverMySQL: {
		sqlName: "mysql",
		dialect: func() schema.Dialect { return mysqldialect.New() },
		goose:   goose.DialectMySQL,
	},
}

// SupportedDriver reports whether driver can be passed to Open.
func SupportedDriver(driver string) bool {
	_, ok := drivers[driver]
	return ok
}

// Open connects to the database identified by driver and dsn. SQLite
// connections get WAL mode and foreign key enforcement. MySQL DSNs should
// set parseTime=true.
func Open(ctx context.Context, driver, dsn string) (*DB, error) {
	info, ok := drivers[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	sqlDB, err := sql.Open(info.sqlName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if driver == DriverSQLite {
		if err := configureSQLite(ctx, sqlDB); err != nil {
			sqlDB.Close()
			return nil, err
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{
		SqlDB:  sqlDB,
		bun:    bun.NewDB(sqlDB, info.dialect()),
		driver: driver,
	}, nil
}

func configureSQLite(ctx context.Context, db *sql.DB) error {
	// A single connection keeps the pragmas below in effect for every query
	// and makes ":memory:" databases behave like one database.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("enable foreign keys: %w", err)
	}
	return nil
}

// Driver returns the driver name the DB was opened with.
func (d *DB) Driver() string {
	return d.driver
}

// Users returns the user repository.
func (d *DB) Users() *UserRepository {
	return NewUserRepository(d)
}

// Courses returns the course repository.
func (d *DB) Courses() *CourseRepository {
	return NewCourseRepository(d)
}

// Ping verifies the database is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.SqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (d *DB) Close() error {
	return d.bun.Close()
}

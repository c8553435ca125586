// Package database opens the MySQL connection pool and applies schema migrations
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrationsTable is the golang-migrate bookkeeping table
const MigrationsTable = "interviewmail_schema_migrations"

// Connect opens a MySQL connection pool and checks that the server answers
func Connect(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate applies every pending migration found under the migrations directory
func Migrate(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: MigrationsTable,
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(MigrationsPath(), "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// MigrationsPath locates the migrations directory from the working directory.
// MIGRATIONS_PATH overrides the lookup.
func MigrationsPath() string {
	if path := os.Getenv("MIGRATIONS_PATH"); path != "" {
		return "file://" + path
	}
	for _, dir := range []string{"migrations", "../migrations", "../../migrations"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return "file://" + dir
		}
	}
	return "file://migrations"
}

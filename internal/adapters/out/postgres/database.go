package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"mailroom/internal/adapters/out/postgres/identityrepo"
	"mailroom/internal/adapters/out/postgres/mallrepo"
	"mailroom/internal/adapters/out/postgres/packagelogrepo"
	"mailroom/internal/adapters/out/postgres/packagerepo"

	"github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DSN builds a key/value connection string.
func DSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
}

// Open connects GORM to PostgreSQL. Driver errors are translated so that unique
// violations come back as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// Migrate creates or updates the schema of every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&mallrepo.ShoppingDTO{},
		&mallrepo.StoreDTO{},
		&identityrepo.UserDTO{},
		&identityrepo.SessionDTO{},
		&packagerepo.PackageDTO{},
		&packagelogrepo.PackageLogDTO{},
	)
}

// EnsureDatabase connects to the server through maintenanceDSN and creates dbName when it
// does not exist yet. It reports whether the database was created.
func EnsureDatabase(ctx context.Context, maintenanceDSN, dbName string, logger *slog.Logger) (bool, error) {
	conn, err := sql.Open("postgres", maintenanceDSN)
	if err != nil {
		return false, err
	}
	defer func() {
		_ = conn.Close()
	}()

	var exists bool
	err = conn.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", dbName,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check database %s: %w", dbName, err)
	}
	if exists {
		return false, nil
	}

	if _, err = conn.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(dbName)); err != nil {
		return false, fmt.Errorf("create database %s: %w", dbName, err)
	}

	logger.InfoContext(ctx, "Database created", "database", dbName)
	return true, nil
}

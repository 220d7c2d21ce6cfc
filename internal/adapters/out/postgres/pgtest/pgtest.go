// Package pgtest starts throwaway PostgreSQL containers for integration suites.
package pgtest

import (
	"context"
	"time"

	postgresadapter "mailroom/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Tables lists every table in truncation order.
const Tables = "package_logs, packages, sessions, users, stores, shoppings"

// Start runs postgres:15-alpine, connects with postgresadapter.Open and migrates the schema.
// The caller terminates the container.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	db, err := postgresadapter.Open(dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	if err = postgresadapter.Migrate(db); err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	return container, db, nil
}

// Truncate empties all tables.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE " + Tables).Error
}

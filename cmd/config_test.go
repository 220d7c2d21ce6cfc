package cmd

import (
	"log/slog"
	"testing"
	"time"

	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func minimalEnv() map[string]string {
	return map[string]string{
		"DB_HOST":    "localhost",
		"DB_USER":    "mailroom",
		"DB_NAME":    "mailroom",
		"JWT_SECRET": "secret",
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(env(minimalEnv()))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.False(t, cfg.DBCreate)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "storage", cfg.StorageDir)
	assert.Equal(t, 72*time.Hour, cfg.ReminderAfter)
	assert.Empty(t, cfg.ReminderCron)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.False(t, cfg.SeedsAdmin())
	assert.Equal(t, "host=localhost port=5432 user=mailroom password= dbname=mailroom sslmode=disable", cfg.DSN())
	assert.Contains(t, cfg.MaintenanceDSN(), "dbname=postgres")
}

func TestLoadConfig_Overrides(t *testing.T) {
	values := minimalEnv()
	values["HTTP_PORT"] = "9000"
	values["DB_CREATE"] = "true"
	values["TOKEN_TTL"] = "30m"
	values["REMINDER_CRON"] = "0 8 * * *"
	values["REMINDER_AFTER"] = "48h"
	values["LOG_LEVEL"] = "debug"
	values["SEED_ADMIN_EMAIL"] = "root@mall.test"
	values["SEED_ADMIN_PASSWORD"] = "change-me-now"

	cfg, err := LoadConfig(env(values))

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.True(t, cfg.DBCreate)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "0 8 * * *", cfg.ReminderCron)
	assert.Equal(t, 48*time.Hour, cfg.ReminderAfter)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.SeedsAdmin())
	assert.Equal(t, "Administrator", cfg.SeedAdminName)
}

func TestLoadConfig_ReportsEveryMalformedValue(t *testing.T) {
	values := minimalEnv()
	values["DB_CREATE"] = "maybe"
	values["TOKEN_TTL"] = "twelve hours"
	values["LOG_LEVEL"] = "loud"

	_, err := LoadConfig(env(values))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorContains(t, err, "DB_CREATE")
	assert.ErrorContains(t, err, "TOKEN_TTL")
	assert.ErrorContains(t, err, "LOG_LEVEL")
}

func TestLoadConfig_RequiredValues(t *testing.T) {
	_, err := LoadConfig(env(map[string]string{}))

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	for _, name := range []string{"DB_HOST", "DB_USER", "DB_NAME", "JWT_SECRET"} {
		assert.ErrorContains(t, err, name)
	}
}

func TestConfig_Validate(t *testing.T) {
	base, err := LoadConfig(env(minimalEnv()))
	require.NoError(t, err)

	t.Run("seed admin needs both email and password", func(t *testing.T) {
		cfg := base
		cfg.SeedAdminEmail = "root@mall.test"

		assert.ErrorIs(t, cfg.Validate(), errs.ErrValueIsRequired)
	})

	t.Run("reminders need a positive delay", func(t *testing.T) {
		cfg := base
		cfg.ReminderCron = "@daily"
		cfg.ReminderAfter = 0

		assert.ErrorIs(t, cfg.Validate(), errs.ErrValueIsOutOfRange)
	})

	t.Run("token lifetime must be positive", func(t *testing.T) {
		cfg := base
		cfg.TokenTTL = -time.Minute

		assert.ErrorIs(t, cfg.Validate(), errs.ErrValueIsOutOfRange)
	})
}

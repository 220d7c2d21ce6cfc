package cmd

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"mailroom/internal/adapters/out/postgres"
	"mailroom/internal/pkg/errs"
)

const (
	defaultHTTPPort      = "8080"
	defaultTokenTTL      = 12 * time.Hour
	defaultStorageDir    = "storage"
	defaultReminderAfter = 72 * time.Hour
)

// Config holds the settings read from the environment at startup.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBCreate   bool

	JWTSecret  string
	TokenTTL   time.Duration
	StorageDir string

	SeedAdminName     string
	SeedAdminEmail    string
	SeedAdminPassword string

	ReminderCron  string
	ReminderAfter time.Duration

	LogLevel slog.Level
}

// LoadConfig reads the configuration through getenv. Unset optional values fall back to
// their defaults; every malformed value is reported.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:          withDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:            getenv("DB_HOST"),
		DBPort:            withDefault(getenv("DB_PORT"), "5432"),
		DBUser:            getenv("DB_USER"),
		DBPassword:        getenv("DB_PASSWORD"),
		DBName:            getenv("DB_NAME"),
		DBSslMode:         withDefault(getenv("DB_SSLMODE"), "disable"),
		JWTSecret:         getenv("JWT_SECRET"),
		StorageDir:        withDefault(getenv("STORAGE_DIR"), defaultStorageDir),
		SeedAdminName:     withDefault(getenv("SEED_ADMIN_NAME"), "Administrator"),
		SeedAdminEmail:    getenv("SEED_ADMIN_EMAIL"),
		SeedAdminPassword: getenv("SEED_ADMIN_PASSWORD"),
		ReminderCron:      getenv("REMINDER_CRON"),
	}

	var parseErrs []error
	var err error

	if cfg.DBCreate, err = parseBool("DB_CREATE", getenv("DB_CREATE")); err != nil {
		parseErrs = append(parseErrs, err)
	}
	if cfg.TokenTTL, err = parseDuration("TOKEN_TTL", getenv("TOKEN_TTL"), defaultTokenTTL); err != nil {
		parseErrs = append(parseErrs, err)
	}
	if cfg.ReminderAfter, err = parseDuration("REMINDER_AFTER", getenv("REMINDER_AFTER"), defaultReminderAfter); err != nil {
		parseErrs = append(parseErrs, err)
	}
	if raw := getenv("LOG_LEVEL"); raw != "" {
		if err = cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
		}
	}

	if err = errors.Join(parseErrs...); err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every missing required setting at once.
func (c Config) Validate() error {
	var required []error
	for name, value := range map[string]string{
		"DB_HOST":    c.DBHost,
		"DB_USER":    c.DBUser,
		"DB_NAME":    c.DBName,
		"JWT_SECRET": c.JWTSecret,
	} {
		if value == "" {
			required = append(required, errs.NewValueIsRequiredError(name))
		}
	}
	if c.TokenTTL <= 0 {
		required = append(required, errs.NewValueIsOutOfRangeError("TOKEN_TTL", c.TokenTTL, "1ns", "any"))
	}
	if c.ReminderCron != "" && c.ReminderAfter <= 0 {
		required = append(required, errs.NewValueIsOutOfRangeError("REMINDER_AFTER", c.ReminderAfter, "1ns", "any"))
	}
	if (c.SeedAdminEmail == "") != (c.SeedAdminPassword == "") {
		required = append(required, errs.NewValueIsRequiredError("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD"))
	}
	return errors.Join(required...)
}

// DSN is the connection string of the application database.
func (c Config) DSN() string {
	return postgres.DSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// MaintenanceDSN points at the server's "postgres" database, used to create DBName.
func (c Config) MaintenanceDSN() string {
	return postgres.DSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, "postgres", c.DBSslMode)
}

// SeedsAdmin reports whether a super admin should be created at start-up.
func (c Config) SeedsAdmin() bool {
	return c.SeedAdminEmail != ""
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func parseBool(name, raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

func parseDuration(name, raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

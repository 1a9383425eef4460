package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	"province-exporter/migration"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
)

func DatabaseUrl(cfg PostgresConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Cluster, cfg.Port),
		Path:     "/" + cfg.Keyspace,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// ConnectDb applies pending migrations and opens the pool used by the
// Postgres sink.
func ConnectDb(ctx context.Context, cfg PostgresConfig) (*pgxpool.Pool, error) {
	databaseUrl := DatabaseUrl(cfg)

	migrationDb, err := sql.Open("postgres", databaseUrl)
	if err != nil {
		return nil, fmt.Errorf("error opening database connection for migrations: %w", err)
	}
	defer migrationDb.Close()
	if err := runMigrations(migrationDb); err != nil {
		return nil, err
	}

	dbConfig, err := pgxpool.ParseConfig(databaseUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgxpool config: %w", err)
	}
	dbConfig.MaxConns = 4
	dbConfig.MinConns = 0
	dbConfig.MaxConnLifetime = time.Hour
	dbConfig.MaxConnIdleTime = 30 * time.Minute
	dbConfig.HealthCheckPeriod = time.Minute
	dbConfig.ConnConfig.ConnectTimeout = 5 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, dbConfig)
	if err != nil {
		return nil, fmt.Errorf("error while creating pgxpool connection: %w", err)
	}
	return pool, nil
}

func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver: %w", err)
	}
	source, err := iofs.New(migration.FS, ".")
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}
	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

package config

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// OpenDB membuka koneksi database sesuai driver di konfigurasi dan
// menjalankan migrasi skema.
func OpenDB(cfg *Config) (*sql.DB, error) {
	var (
		db      *sql.DB
		dialect string
		err     error
	)

	switch cfg.DBDriver {
	case "postgres":
		connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)

		db, err = sql.Open("postgres", connStr)
		if err != nil {
			return nil, fmt.Errorf("gagal membuka koneksi PostgreSQL: %w", err)
		}

		// Batas connection pool
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(10 * time.Minute)

		dialect = "postgres"

	case "sqlite":
		db, err = sql.Open("sqlite", cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("gagal membuka koneksi SQLite: %w", err)
		}

		// SQLite hanya mendukung satu penulis
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)

		for _, pragma := range []string{"PRAGMA journal_mode = WAL;", "PRAGMA busy_timeout = 5000;"} {
			if _, err := db.Exec(pragma); err != nil {
				db.Close()
				return nil, fmt.Errorf("gagal mengatur pragma SQLite: %w", err)
			}
		}

		dialect = "sqlite3"

	default:
		return nil, fmt.Errorf("driver database tidak dikenal: %q", cfg.DBDriver)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("gagal melakukan ping ke basis data: %w", err)
	}

	if err := RunMigrations(db, dialect); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// RunMigrations menjalankan migrasi goose yang di-embed.
func RunMigrations(db *sql.DB, dialect string) error {
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("gagal mengatur dialect goose: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up gagal: %w", err)
	}

	return nil
}

package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/lib/pq"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/talkifydocs/ingest-backend/config"

	database "github.com/talkifydocs/ingest-backend/pkg/db"
)

// ensureDatabase creates the configured database if the server doesn't have
// it yet.
func ensureDatabase(cfg config.DatabaseConfig) error {
	maintenance := cfg
	maintenance.Name = "postgres"

	db, err := sql.Open("postgres", database.DSN(maintenance))
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("connecting to %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	var exists bool
	q := "SELECT EXISTS (SELECT 1 FROM pg_catalog.pg_database WHERE datname = $1)"
	if err := db.QueryRow(q, cfg.Name).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	log.Printf("Creating database %s", cfg.Name)
	_, err = db.Exec("CREATE DATABASE " + pq.QuoteIdentifier(cfg.Name))
	return err
}

func migrationURL(cfg config.DatabaseConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:     cfg.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func main() {
	if err := config.Init(config.ParseConfigFlag()); err != nil {
		log.Fatal(err.Error())
	}

	cfg := config.Config.Database
	if err := ensureDatabase(cfg); err != nil {
		log.Fatal(err.Error())
	}

	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err.Error())
	}

	source := "file://" + filepath.ToSlash(filepath.Join(wd, "pkg", "db", "migration"))
	m, err := migrate.New(source, migrationURL(cfg))
	if err != nil {
		log.Fatal(err.Error())
	}
	defer m.Close()

	current, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Fatal(err.Error())
	}

	log.Printf("Schema version is %d (dirty: %t), expected %d", current, dirty, cfg.Version)
	if dirty {
		log.Fatal("the schema is dirty, fix it before migrating")
	}

	for current < cfg.Version {
		log.Printf("Migrating to version %d", current+1)
		if err := m.Steps(1); err != nil {
			log.Fatal(err.Error())
		}

		if current, _, err = m.Version(); err != nil {
			log.Fatal(err.Error())
		}
	}

	log.Printf("Schema is at version %d", current)
}

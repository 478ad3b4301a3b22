package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaFS embed.FS

// FileName is the database file created inside the data directory.
const FileName = "mindclean.db"

// Open opens (and migrates) the database inside dataDir, creating the directory if needed.
func Open(dataDir string) (*sql.DB, error) {
	if dataDir == "" {
		return nil, errors.New("data directory is not set")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return OpenPath(filepath.Join(dataDir, FileName))
}

// OpenPath opens the database file at path and applies the schema.
func OpenPath(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		path,
	)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one writer; keeps the CLI and the reminder goroutine from tripping over each other
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		return nil, errors.Join(err, db.Close())
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	b, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	if _, err := db.Exec(string(b)); err != nil {
		return errors.Join(fmt.Errorf("schema apply failed"), err)
	}
	return nil
}

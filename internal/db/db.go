// internal/db/db.go
package db

import (
    "database/sql"
    "log"
    "os"

    _ "modernc.org/sqlite"
)

var DB *sql.DB

const schema = `
CREATE TABLE IF NOT EXISTS campaigns (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    name       TEXT NOT NULL,
    due_date   TIMESTAMP,
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_campaigns_name ON campaigns(name);
`

// Init opens (or creates) the database file and ensures the schema.
// The path comes from CAMPAIGN_DB_PATH, defaulting to database.db in
// the working directory.
func Init() {
    path := os.Getenv("CAMPAIGN_DB_PATH")
    if path == "" {
        path = "database.db"
    }

    var err error
    DB, err = Open(path)
    if err != nil {
        log.Fatalf("failed to open DB at %s: %v", path, err)
    }

    log.Println("✅ Connected to database:", path)
}

// Open opens the SQLite file at path, creating it if absent, and
// ensures the campaigns table exists.
func Open(path string) (*sql.DB, error) {
    d, err := sql.Open("sqlite", path)
    if err != nil {
        return nil, err
    }

    if err := d.Ping(); err != nil {
        d.Close()
        return nil, err
    }

    if err := EnsureSchema(d); err != nil {
        d.Close()
        return nil, err
    }

    return d, nil
}

// EnsureSchema creates the campaigns table and its index if missing.
// Safe to call on every boot.
func EnsureSchema(d *sql.DB) error {
    _, err := d.Exec(schema)
    return err
}

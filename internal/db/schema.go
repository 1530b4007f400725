package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS entries (
    id TEXT PRIMARY KEY,
    timestamp TEXT NOT NULL,
    text TEXT NOT NULL,
    mood_slider REAL NOT NULL,
    flavor TEXT NOT NULL,
    analysis TEXT NOT NULL,
    support TEXT NOT NULL,
    quote TEXT,
    spiritual TEXT,
    wisdom TEXT
);

CREATE INDEX IF NOT EXISTS idx_entries_timestamp ON entries(timestamp);
`

func Open(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := conn.Exec(SchemaSQL); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return conn, nil
}

package db

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// ApplyMigrations applies the embedded schema SQL to the database and
// performs lightweight post-creation migrations (adding new columns when
// needed).
func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if err := ensureRunColumns(db); err != nil {
		return err
	}
	return nil
}

// ensureRunColumns checks for columns added after the first release and
// backfills them on upgraded databases.
func ensureRunColumns(db *sql.DB) error {
	rows, err := db.Query("PRAGMA table_info(runs)")
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()
	cols := map[string]bool{}
	for rows.Next() {
		var cid int
		var name string
		var ctype string
		var notnull int
		var dflt interface{}
		var pk int
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return err
		}
		cols[name] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if !cols["dry_run"] {
		if _, err := db.Exec("ALTER TABLE runs ADD COLUMN dry_run INTEGER NOT NULL DEFAULT 0"); err != nil {
			return err
		}
	}
	if !cols["exit_code"] {
		if _, err := db.Exec("ALTER TABLE runs ADD COLUMN exit_code INTEGER NOT NULL DEFAULT 0"); err != nil {
			return err
		}
	}
	return nil
}

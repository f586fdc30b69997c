package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

var schemaStatements = []string{
	`CREATE TABLE metadata (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE languages (
		tag3 TEXT PRIMARY KEY,
		tag1 TEXT UNIQUE,
		name TEXT NOT NULL,
		autonym TEXT,
		source TEXT NOT NULL
	)`,
	`CREATE TABLE default_scripts (
		tag3 TEXT PRIMARY KEY REFERENCES languages(tag3),
		script TEXT NOT NULL,
		source TEXT NOT NULL
	)`,
	// script and region hold '' when absent so the primary key stays unique.
	`CREATE TABLE lcids (
		tag3 TEXT NOT NULL REFERENCES languages(tag3),
		script TEXT NOT NULL DEFAULT '',
		region TEXT NOT NULL DEFAULT '',
		lcid INTEGER NOT NULL,
		PRIMARY KEY (tag3, script, region)
	)`,
	`CREATE INDEX idx_lcids_value ON lcids(lcid)`,
}

// WriteSQLite writes d to a new SQLite database at path, replacing any
// existing file once the database is complete. version is recorded in the
// metadata table.
func WriteSQLite(ctx context.Context, path string, d Dataset, version string) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".iso639-export.*.db")
	if err != nil {
		return fmt.Errorf("export: create temp database: %w", err)
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()

	if err := fillDatabase(ctx, tmpPath, d, version); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("export: rename database: %w", err)
	}
	return nil
}

func fillDatabase(ctx context.Context, path string, d Dataset, version string) (err error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("export: open sqlite database: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: close sqlite database: %w", cerr)
		}
	}()
	db.SetMaxOpenConns(1)

	if err := applyPragmas(ctx, db); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("export: begin transaction: %w", err)
	}
	if err := fillTx(ctx, tx, d, version); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("export: commit transaction: %w", err)
	}
	return nil
}

func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = DELETE",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("export: apply pragma %q: %w", pragma, err)
		}
	}
	return nil
}

func fillTx(ctx context.Context, tx *sql.Tx, d Dataset, version string) error {
	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("export: apply schema statement %q: %w", abbreviate(stmt), err)
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO metadata (key, value) VALUES ('version', ?)`, version); err != nil {
		return fmt.Errorf("export: insert metadata: %w", err)
	}

	langStmt, err := tx.PrepareContext(ctx, `INSERT INTO languages (tag3, tag1, name, autonym, source) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("export: prepare languages insert: %w", err)
	}
	defer langStmt.Close()
	for _, r := range d.Autonyms {
		if _, err := langStmt.ExecContext(ctx, r.Tag3, nullable(r.Tag1), r.Name, nullable(r.Autonym), r.Source); err != nil {
			return fmt.Errorf("export: insert language %s: %w", r.Tag3, err)
		}
	}

	scriptStmt, err := tx.PrepareContext(ctx, `INSERT INTO default_scripts (tag3, script, source) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("export: prepare default_scripts insert: %w", err)
	}
	defer scriptStmt.Close()
	for _, r := range d.Scripts {
		if _, err := scriptStmt.ExecContext(ctx, r.Tag3, r.Script, r.Source); err != nil {
			return fmt.Errorf("export: insert default script %s: %w", r.Tag3, err)
		}
	}

	lcidStmt, err := tx.PrepareContext(ctx, `INSERT INTO lcids (tag3, script, region, lcid) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("export: prepare lcids insert: %w", err)
	}
	defer lcidStmt.Close()
	for _, r := range d.LCIDs {
		if _, err := lcidStmt.ExecContext(ctx, r.Tag3, r.Script, r.Region, int64(r.LCID)); err != nil {
			return fmt.Errorf("export: insert lcid %s: %w", r.Key(), err)
		}
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// abbreviate shortens a schema statement for error messages.
func abbreviate(stmt string) string {
	const maxLen = 64
	trimmed := strings.Join(strings.Fields(stmt), " ")
	if len(trimmed) <= maxLen {
		return trimmed
	}
	return trimmed[:maxLen] + "..."
}

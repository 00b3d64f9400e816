package store

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sort"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pablozramirez73/questionari-webapp/internal/models"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// SQLite keeps the questionnaire list in a single-row key-value table so the
// stored shape stays exactly "one entry, value = JSON array".
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies
// migrations.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	entries, err := embeddedMigrations.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read embedded migrations: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".sql" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	for _, name := range names {
		content, err := embeddedMigrations.ReadFile(filepath.Join("migrations", name))
		if err != nil {
			return fmt.Errorf("read embedded migration %s: %w", name, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("exec migration %s: %w", name, err)
		}
	}
	return nil
}

// Load returns the stored list. An absent entry or a value that fails to
// parse both come back as an empty list; a corrupt store is simply treated as
// "no questionnaires".
func (s *SQLite) Load() ([]models.Questionnaire, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM app_state WHERE key = ?", listKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []models.Questionnaire{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", listKey, err)
	}
	var list []models.Questionnaire
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		log.Printf("store: stored %s value failed to parse, starting empty: %v", listKey, err)
		return []models.Questionnaire{}, nil
	}
	if list == nil {
		list = []models.Questionnaire{}
	}
	return list, nil
}

// Save serializes the whole list and overwrites the stored entry.
func (s *SQLite) Save(list []models.Questionnaire) error {
	if list == nil {
		list = []models.Questionnaire{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode %s: %w", listKey, err)
	}
	_, err = s.db.Exec(
		"INSERT INTO app_state(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		listKey, string(raw),
	)
	if err != nil {
		return fmt.Errorf("save %s: %w", listKey, err)
	}
	return nil
}

func (s *SQLite) Close() error { return s.db.Close() }

var _ Store = (*SQLite)(nil)

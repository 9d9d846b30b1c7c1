package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chris-regnier/diarycal/internal/entry"
	"github.com/chris-regnier/diarycal/internal/storage"
	_ "github.com/tursodatabase/go-libsql"
)

// DefaultFileName is the database file created inside the data directory.
const DefaultFileName = "diary.db"

// Store implements storage.Store using SQLite via Turso/libSQL.
type Store struct {
	db   *sql.DB
	path string
}

// New opens (or creates) the diary database at dataDir/fileName.
// Any failure here wraps storage.ErrUnavailable.
func New(dataDir, fileName string) (*Store, error) {
	if fileName == "" {
		fileName = DefaultFileName
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrUnavailable, err)
	}

	dbPath := filepath.Join(dataDir, fileName)
	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrUnavailable, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrUnavailable, err)
	}

	// Single connection for the process lifetime.
	db.SetMaxOpenConns(1)

	// The pragma answers with the resulting mode, so it has to be queried.
	var mode string
	if err := db.QueryRow("PRAGMA journal_mode=WAL").Scan(&mode); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling WAL mode: %v", storage.ErrUnavailable, err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, path: dbPath}, nil
}

// The column layout matches databases written by earlier versions of the
// diary, which never enforced one row per date. Uniqueness is checked in Add.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS diary (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			date  DATE,
			entry TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_diary_date ON diary(date);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("%w: creating schema: %v", storage.ErrUnavailable, err)
	}
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the entry for date. Legacy duplicate rows resolve to the oldest.
func (s *Store) Get(date time.Time) (entry.Entry, error) {
	day := entry.Day(date)
	row := s.db.QueryRow(
		"SELECT entry FROM diary WHERE date = ? ORDER BY id LIMIT 1",
		day.Format(entry.DateLayout),
	)

	var text sql.NullString
	if err := row.Scan(&text); err != nil {
		if err == sql.ErrNoRows {
			return entry.Entry{}, storage.ErrNotFound
		}
		return entry.Entry{}, fmt.Errorf("%w: querying entry: %v", storage.ErrStorage, err)
	}
	return entry.Entry{Date: day, Text: text.String}, nil
}

// Add inserts a new entry for date, or returns storage.ErrDuplicate.
func (s *Store) Add(date time.Time, text string) error {
	key := entry.FormatDate(date)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", storage.ErrStorage, err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRow("SELECT COUNT(*) FROM diary WHERE date = ?", key).Scan(&exists); err != nil {
		return fmt.Errorf("%w: checking entry: %v", storage.ErrStorage, err)
	}
	if exists > 0 {
		return storage.ErrDuplicate
	}

	if _, err := tx.Exec("INSERT INTO diary (date, entry) VALUES (?, ?)", key, text); err != nil {
		return fmt.Errorf("%w: inserting entry: %v", storage.ErrStorage, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing: %v", storage.ErrStorage, err)
	}
	return nil
}

// Update replaces the text for date, or returns storage.ErrNotFound.
func (s *Store) Update(date time.Time, text string) error {
	result, err := s.db.Exec(
		"UPDATE diary SET entry = ? WHERE date = ?",
		text, entry.FormatDate(date),
	)
	if err != nil {
		return fmt.Errorf("%w: updating entry: %v", storage.ErrStorage, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking rows affected: %v", storage.ErrStorage, err)
	}
	if rows == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Remove deletes every row for date. Removing an absent date is not an error.
func (s *Store) Remove(date time.Time) error {
	if _, err := s.db.Exec("DELETE FROM diary WHERE date = ?", entry.FormatDate(date)); err != nil {
		return fmt.Errorf("%w: deleting entry: %v", storage.ErrStorage, err)
	}
	return nil
}

// ListDates returns each date holding an entry once, in ascending order.
func (s *Store) ListDates() ([]time.Time, error) {
	rows, err := s.db.Query("SELECT DISTINCT date FROM diary WHERE date IS NOT NULL ORDER BY date")
	if err != nil {
		return nil, fmt.Errorf("%w: listing dates: %v", storage.ErrStorage, err)
	}
	defer rows.Close()

	dates := []time.Time{}
	for rows.Next() {
		var raw any
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %v", storage.ErrStorage, err)
		}
		d, err := scanDay(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", storage.ErrStorage, err)
		}
		if n := len(dates); n > 0 && dates[n-1].Equal(d) {
			continue
		}
		dates = append(dates, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating rows: %v", storage.ErrStorage, err)
	}
	return dates, nil
}

// scanDay converts a date column value to local midnight. libSQL hands
// yyyy-MM-dd text back as a UTC timestamp; older files may hold plain text.
func scanDay(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local), nil
	case string:
		return parseDay(d)
	case []byte:
		return parseDay(string(d))
	default:
		return time.Time{}, fmt.Errorf("unexpected date value %v (%T)", v, v)
	}
}

func parseDay(s string) (time.Time, error) {
	if len(s) > len(entry.DateLayout) {
		s = s[:len(entry.DateLayout)]
	}
	d, err := time.ParseInLocation(entry.DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %v", s, err)
	}
	return d, nil
}

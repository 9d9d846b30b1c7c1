package markdown

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/chris-regnier/diarycal/internal/entry"
	"github.com/chris-regnier/diarycal/internal/storage"
)

// Store implements storage.Store with one Markdown file per date:
//
//	<dataDir>/entries/2024/03/2024-03-01.md
type Store struct {
	baseDir string
}

// New creates a new Markdown file storage backend.
func New(dataDir string) (*Store, error) {
	entriesDir := filepath.Join(dataDir, "entries")
	if err := os.MkdirAll(entriesDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating entries directory: %v", storage.ErrUnavailable, err)
	}
	return &Store{baseDir: entriesDir}, nil
}

// Close is a no-op for the Markdown backend.
func (s *Store) Close() error {
	return nil
}

func (s *Store) entryPath(date time.Time) string {
	d := entry.Day(date)
	return filepath.Join(s.baseDir, d.Format("2006"), d.Format("01"), d.Format(entry.DateLayout)+".md")
}

type frontMatter struct {
	Date      string `yaml:"date"`
	UpdatedAt string `yaml:"updated_at"`
}

func marshal(date time.Time, text string) []byte {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "date: %q\n", entry.FormatDate(date))
	fmt.Fprintf(&b, "updated_at: %q\n", time.Now().UTC().Format(time.RFC3339))
	b.WriteString("---\n")
	b.WriteString(text)
	return []byte(b.String())
}

func unmarshal(data []byte) (entry.Entry, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(strings.NewReader(string(data)), &fm)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("%w: parsing front-matter: %v", storage.ErrStorage, err)
	}

	date, err := time.ParseInLocation(entry.DateLayout, fm.Date, time.Local)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("%w: parsing date: %v", storage.ErrStorage, err)
	}

	return entry.Entry{
		Date: date,
		Text: string(body),
	}, nil
}

// atomicWrite writes data to a temp file then renames it to the target path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating directory: %v", storage.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", storage.ErrStorage, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing temp file: %v", storage.ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", storage.ErrStorage, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming file: %v", storage.ErrStorage, err)
	}
	return nil
}

func (s *Store) exists(date time.Time) (bool, error) {
	_, err := os.Stat(s.entryPath(date))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("%w: checking entry: %v", storage.ErrStorage, err)
}

// Get reads the entry file for date.
func (s *Store) Get(date time.Time) (entry.Entry, error) {
	data, err := os.ReadFile(s.entryPath(date))
	if err != nil {
		if os.IsNotExist(err) {
			return entry.Entry{}, storage.ErrNotFound
		}
		return entry.Entry{}, fmt.Errorf("%w: reading file: %v", storage.ErrStorage, err)
	}
	return unmarshal(data)
}

// Add writes a new entry file, or returns storage.ErrDuplicate.
func (s *Store) Add(date time.Time, text string) error {
	ok, err := s.exists(date)
	if err != nil {
		return err
	}
	if ok {
		return storage.ErrDuplicate
	}
	return atomicWrite(s.entryPath(date), marshal(date, text))
}

// Update rewrites an existing entry file, or returns storage.ErrNotFound.
func (s *Store) Update(date time.Time, text string) error {
	ok, err := s.exists(date)
	if err != nil {
		return err
	}
	if !ok {
		return storage.ErrNotFound
	}
	return atomicWrite(s.entryPath(date), marshal(date, text))
}

// Remove deletes the entry file. Removing an absent date is not an error.
func (s *Store) Remove(date time.Time) error {
	path := s.entryPath(date)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: deleting file: %v", storage.ErrStorage, err)
	}

	// Clean up empty month/year directories
	dir := filepath.Dir(path)
	for i := 0; i < 2; i++ {
		if dir == s.baseDir {
			break
		}
		if err := os.Remove(dir); err != nil {
			break // not empty or other error
		}
		dir = filepath.Dir(dir)
	}
	return nil
}

// ListDates derives dates from file names; file contents are not read.
func (s *Store) ListDates() ([]time.Time, error) {
	dates := []time.Time{}
	err := filepath.WalkDir(s.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		date, err := time.ParseInLocation(entry.DateLayout, strings.TrimSuffix(d.Name(), ".md"), time.Local)
		if err != nil {
			return nil // not an entry file
		}
		dates = append(dates, date)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: scanning entries: %v", storage.ErrStorage, err)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

package markdown

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/diarycal/internal/storage"
)

func TestEntryFileLayout(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := s.Add(time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), "Hello"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	path := filepath.Join(dir, "entries", "2024", "03", "2024-03-01.md")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading entry file: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "---\n") {
		t.Errorf("expected front-matter, got %q", content)
	}
	if !strings.Contains(content, `date: "2024-03-01"`) {
		t.Errorf("missing date in front-matter: %q", content)
	}
	if !strings.HasSuffix(content, "Hello") {
		t.Errorf("missing body: %q", content)
	}
}

func TestRemoveCleansEmptyDirectories(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	s.Add(d, "Hello")
	if err := s.Remove(d); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "entries", "2024")); !os.IsNotExist(err) {
		t.Errorf("expected year directory removed, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "entries")); err != nil {
		t.Errorf("entries directory should remain: %v", err)
	}
}

func TestListDatesSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Add(time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), "Hello")

	os.WriteFile(filepath.Join(dir, "entries", "README.md"), []byte("notes"), 0644)
	os.WriteFile(filepath.Join(dir, "entries", "2024-03-09.txt"), []byte("x"), 0644)

	dates, err := s.ListDates()
	if err != nil {
		t.Fatalf("ListDates: %v", err)
	}
	if len(dates) != 1 {
		t.Errorf("expected 1 date, got %v", dates)
	}
}

func TestLeadingNewlineKept(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	if err := s.Add(d, "\nhello"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, err := s.Get(d)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Text != "\nhello" {
		t.Errorf("text = %q, want %q", got.Text, "\nhello")
	}
}

func TestListDatesReportsWalkErrors(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Add(time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), "Hello")

	if err := os.RemoveAll(filepath.Join(dir, "entries")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ListDates(); !errors.Is(err, storage.ErrStorage) {
		t.Errorf("expected ErrStorage, got %v", err)
	}
}

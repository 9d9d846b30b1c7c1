package storage_test

import (
	"errors"
	"testing"
	"time"

	"github.com/chris-regnier/diarycal/internal/storage"
	"github.com/chris-regnier/diarycal/internal/storage/markdown"
	"github.com/chris-regnier/diarycal/internal/storage/sqlite"
)

type storageFactory func(t *testing.T, dir string) storage.Store

func markdownFactory(t *testing.T, dir string) storage.Store {
	t.Helper()
	s, err := markdown.New(dir)
	if err != nil {
		t.Fatalf("creating markdown storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sqliteFactory(t *testing.T, dir string) storage.Store {
	t.Helper()
	s, err := sqlite.New(dir, sqlite.DefaultFileName)
	if err != nil {
		t.Fatalf("creating sqlite storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func dateLocal(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func containsDate(dates []time.Time, d time.Time) bool {
	for _, x := range dates {
		if x.Equal(d) {
			return true
		}
	}
	return false
}

func runContractTests(t *testing.T, name string, factory storageFactory) {
	t.Run(name, func(t *testing.T) {
		mar1 := dateLocal(2024, 3, 1)
		mar2 := dateLocal(2024, 3, 2)

		t.Run("Get absent", func(t *testing.T) {
			s := factory(t, t.TempDir())
			if _, err := s.Get(mar1); !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("expected ErrNotFound, got: %v", err)
			}
		})

		t.Run("Add and Get", func(t *testing.T) {
			s := factory(t, t.TempDir())
			if err := s.Add(mar1, "Hello"); err != nil {
				t.Fatalf("Add: %v", err)
			}
			got, err := s.Get(mar1)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.Text != "Hello" {
				t.Errorf("text = %q, want %q", got.Text, "Hello")
			}
			if !got.Date.Equal(mar1) {
				t.Errorf("date = %v, want %v", got.Date, mar1)
			}

			dates, err := s.ListDates()
			if err != nil {
				t.Fatalf("ListDates: %v", err)
			}
			if len(dates) != 1 || !dates[0].Equal(mar1) {
				t.Errorf("ListDates = %v, want [2024-03-01]", dates)
			}
		})

		t.Run("Add ignores time of day", func(t *testing.T) {
			s := factory(t, t.TempDir())
			if err := s.Add(mar1.Add(15*time.Hour+30*time.Minute), "afternoon"); err != nil {
				t.Fatalf("Add: %v", err)
			}
			got, err := s.Get(mar1.Add(time.Hour))
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.Text != "afternoon" {
				t.Errorf("text = %q", got.Text)
			}
		})

		t.Run("Add multiline text", func(t *testing.T) {
			s := factory(t, t.TempDir())
			text := "# Friday\n\nWent for a walk.\n- saw a heron\n- it rained"
			if err := s.Add(mar1, text); err != nil {
				t.Fatalf("Add: %v", err)
			}
			got, err := s.Get(mar1)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.Text != text {
				t.Errorf("text = %q, want %q", got.Text, text)
			}
		})

		t.Run("Text round-trips exactly", func(t *testing.T) {
			texts := []string{
				"",
				"\nhello",
				"\n\nx",
				"  \n",
				"a\n---\nb",
				"tabs\tstay\ttabs",
				"trailing newline\n",
			}
			for i, text := range texts {
				s := factory(t, t.TempDir())
				d := mar1.AddDate(0, 0, i)
				if err := s.Add(d, text); err != nil {
					t.Fatalf("Add(%q): %v", text, err)
				}
				got, err := s.Get(d)
				if err != nil {
					t.Fatalf("Get after Add(%q): %v", text, err)
				}
				if got.Text != text {
					t.Errorf("after Add: text = %q, want %q", got.Text, text)
				}

				if err := s.Update(d, text+text); err != nil {
					t.Fatalf("Update(%q): %v", text, err)
				}
				got, _ = s.Get(d)
				if got.Text != text+text {
					t.Errorf("after Update: text = %q, want %q", got.Text, text+text)
				}
			}
		})

		t.Run("Add duplicate rejected", func(t *testing.T) {
			s := factory(t, t.TempDir())
			if err := s.Add(mar1, "first"); err != nil {
				t.Fatalf("Add: %v", err)
			}
			if err := s.Add(mar1, "second"); !errors.Is(err, storage.ErrDuplicate) {
				t.Fatalf("expected ErrDuplicate, got: %v", err)
			}
			got, _ := s.Get(mar1)
			if got.Text != "first" {
				t.Errorf("text = %q, want %q", got.Text, "first")
			}
			dates, _ := s.ListDates()
			if len(dates) != 1 {
				t.Errorf("expected 1 date, got %d", len(dates))
			}
		})

		t.Run("Update existing", func(t *testing.T) {
			s := factory(t, t.TempDir())
			if err := s.Add(mar1, "Hello"); err != nil {
				t.Fatalf("Add: %v", err)
			}
			if err := s.Add(mar2, "Other"); err != nil {
				t.Fatalf("Add: %v", err)
			}
			if err := s.Update(mar1, "Hello again"); err != nil {
				t.Fatalf("Update: %v", err)
			}
			got, _ := s.Get(mar1)
			if got.Text != "Hello again" {
				t.Errorf("text = %q", got.Text)
			}
			other, _ := s.Get(mar2)
			if other.Text != "Other" {
				t.Errorf("other date changed: %q", other.Text)
			}
		})

		t.Run("Update same text", func(t *testing.T) {
			s := factory(t, t.TempDir())
			if err := s.Add(mar1, "same"); err != nil {
				t.Fatalf("Add: %v", err)
			}
			if err := s.Update(mar1, "same"); err != nil {
				t.Errorf("Update with unchanged text: %v", err)
			}
		})

		t.Run("Update missing", func(t *testing.T) {
			s := factory(t, t.TempDir())
			if err := s.Update(mar2, "X"); !errors.Is(err, storage.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got: %v", err)
			}
			if _, err := s.Get(mar2); !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("update created an entry: %v", err)
			}
		})

		t.Run("Remove", func(t *testing.T) {
			s := factory(t, t.TempDir())
			if err := s.Add(mar1, "Hello"); err != nil {
				t.Fatalf("Add: %v", err)
			}
			if err := s.Remove(mar1); err != nil {
				t.Fatalf("Remove: %v", err)
			}
			if _, err := s.Get(mar1); !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("expected ErrNotFound after remove, got: %v", err)
			}
			dates, err := s.ListDates()
			if err != nil {
				t.Fatalf("ListDates: %v", err)
			}
			if len(dates) != 0 {
				t.Errorf("expected no dates, got %v", dates)
			}
		})

		t.Run("Remove absent", func(t *testing.T) {
			s := factory(t, t.TempDir())
			if err := s.Remove(mar1); err != nil {
				t.Errorf("Remove absent: %v", err)
			}
		})

		t.Run("Add after remove", func(t *testing.T) {
			s := factory(t, t.TempDir())
			s.Add(mar1, "one")
			s.Remove(mar1)
			if err := s.Add(mar1, "two"); err != nil {
				t.Fatalf("Add after remove: %v", err)
			}
			got, _ := s.Get(mar1)
			if got.Text != "two" {
				t.Errorf("text = %q", got.Text)
			}
		})

		t.Run("ListDates", func(t *testing.T) {
			s := factory(t, t.TempDir())
			days := []time.Time{dateLocal(2024, 3, 5), dateLocal(2023, 12, 31), dateLocal(2024, 3, 1)}
			for _, d := range days {
				if err := s.Add(d, "entry"); err != nil {
					t.Fatalf("Add %v: %v", d, err)
				}
			}
			dates, err := s.ListDates()
			if err != nil {
				t.Fatalf("ListDates: %v", err)
			}
			want := []time.Time{dateLocal(2023, 12, 31), dateLocal(2024, 3, 1), dateLocal(2024, 3, 5)}
			if len(dates) != len(want) {
				t.Fatalf("expected %v, got %v", want, dates)
			}
			for i, d := range want {
				if !dates[i].Equal(d) {
					t.Errorf("dates[%d] = %v, want %v", i, dates[i], d)
				}
			}
			if containsDate(dates, mar2) {
				t.Error("unexpected 2024-03-02")
			}
		})

		t.Run("ListDates empty", func(t *testing.T) {
			s := factory(t, t.TempDir())
			dates, err := s.ListDates()
			if err != nil {
				t.Fatalf("ListDates: %v", err)
			}
			if dates == nil || len(dates) != 0 {
				t.Errorf("expected empty non-nil slice, got %#v", dates)
			}
		})

		t.Run("Persists across reopen", func(t *testing.T) {
			dir := t.TempDir()
			s := factory(t, dir)
			if err := s.Add(mar1, "durable"); err != nil {
				t.Fatalf("Add: %v", err)
			}
			s.Close()

			reopened := factory(t, dir)
			got, err := reopened.Get(mar1)
			if err != nil {
				t.Fatalf("Get after reopen: %v", err)
			}
			if got.Text != "durable" {
				t.Errorf("text = %q", got.Text)
			}
		})
	})
}

func TestMarkdownStorage(t *testing.T) {
	runContractTests(t, "markdown", markdownFactory)
}

func TestSQLiteStorage(t *testing.T) {
	runContractTests(t, "sqlite", sqliteFactory)
}

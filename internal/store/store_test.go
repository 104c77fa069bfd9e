package store

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestStore() *Store {
	return New(log.New(io.Discard))
}

func TestInit(t *testing.T) {
	t.Run("CreatesDirAndFiles", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "data")
		paths := NewPaths(dir)
		s := newTestStore()

		s.Init(paths)

		for _, path := range []string{paths.Users(), paths.Films(), paths.Playlists()} {
			if !s.Exists(path) {
				t.Errorf("expected %s to exist", path)
			}
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		paths := NewPaths(t.TempDir())
		s := newTestStore()

		s.Init(paths)
		s.AppendLine(paths.Users(), "a@b.com|pw|A|USER")
		s.Init(paths)

		lines := s.ReadLines(paths.Users())
		if len(lines) != 1 {
			t.Errorf("re-running Init should not touch existing files, got %d lines", len(lines))
		}
	})
}

func TestReadLines(t *testing.T) {
	t.Run("MissingFileDegradesToEmpty", func(t *testing.T) {
		s := newTestStore()

		lines := s.ReadLines(filepath.Join(t.TempDir(), "absent.txt"))
		if len(lines) != 0 {
			t.Errorf("expected empty result, got %v", lines)
		}
	})

	t.Run("OversizedLineSurvivesRoundTrip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "records.txt")
		s := newTestStore()

		long := "2|T|D|G|2020|" + strings.Repeat("s", 70*1024) + "||true"
		s.WriteLines(path, []string{"before", long, "after"})

		lines := s.ReadLines(path)
		if len(lines) != 3 {
			t.Fatalf("lines = %d, want all 3 records back", len(lines))
		}
		if lines[1] != long {
			t.Error("oversized record must be read back intact")
		}
		if lines[2] != "after" {
			t.Errorf("lines[2] = %q, records after an oversized one must survive", lines[2])
		}

		// A load followed by a rewrite must not shrink the collection.
		s.WriteLines(path, lines)
		if got := s.ReadLines(path); len(got) != 3 {
			t.Errorf("lines after rewrite = %d, want 3", len(got))
		}
	})

	t.Run("OrderedLines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "records.txt")
		if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0644); err != nil {
			t.Fatal(err)
		}

		lines := newTestStore().ReadLines(path)
		if !reflect.DeepEqual(lines, []string{"one", "two", "three"}) {
			t.Errorf("lines = %v", lines)
		}
	})
}

func TestWriteLines(t *testing.T) {
	t.Run("TruncatesAndRewrites", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "records.txt")
		s := newTestStore()

		s.WriteLines(path, []string{"old-1", "old-2", "old-3"})
		s.WriteLines(path, []string{"new-1"})

		if got := s.ReadLines(path); !reflect.DeepEqual(got, []string{"new-1"}) {
			t.Errorf("lines = %v", got)
		}
	})

	t.Run("UnwritablePathIsSilent", func(t *testing.T) {
		// Must not panic or error; the failure is only logged.
		newTestStore().WriteLines(filepath.Join(t.TempDir(), "no", "such", "dir.txt"), []string{"x"})
	})
}

func TestAppendLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	s := newTestStore()

	s.WriteLines(path, []string{"first"})
	s.AppendLine(path, "second")

	if got := s.ReadLines(path); !reflect.DeepEqual(got, []string{"first", "second"}) {
		t.Errorf("lines = %v", got)
	}
}

func TestExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	s := newTestStore()

	if s.Exists(path) {
		t.Error("file should not exist yet")
	}
	s.AppendLine(path, "x")
	if !s.Exists(path) {
		t.Error("file should exist after append")
	}
}

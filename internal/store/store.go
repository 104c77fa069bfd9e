// package store implements the line-oriented file storage the catalog
// persists into: one file per record kind, one record per line.
//
// The store never surfaces I/O errors to callers. Reads degrade to an
// empty collection and writes to "nothing persisted"; both conditions are
// reported through the store's logger only. Writes truncate and rewrite
// the whole file and are not atomic.
package store

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// File name suffixes under the data directory.
const (
	UsersFile     = "users.txt"
	FilmsFile     = "films.txt"
	PlaylistsFile = "playlists.txt"
)

// maxLineSize bounds a single record line when reading.
const maxLineSize = 16 * 1024 * 1024

// Paths resolves the storage file locations under a data directory.
type Paths struct {
	Dir string
}

// NewPaths creates a Paths rooted at the given data directory.
func NewPaths(dir string) Paths {
	return Paths{Dir: dir}
}

func (p Paths) Users() string     { return filepath.Join(p.Dir, UsersFile) }
func (p Paths) Films() string     { return filepath.Join(p.Dir, FilmsFile) }
func (p Paths) Playlists() string { return filepath.Join(p.Dir, PlaylistsFile) }

// Store reads and writes newline-separated record files.
type Store struct {
	logger *log.Logger
}

// New creates a Store that reports I/O failures through the given logger.
func New(logger *log.Logger) *Store {
	return &Store{logger: logger}
}

// Init creates the data directory and the three record files where
// absent. Safe to call repeatedly.
func (s *Store) Init(paths Paths) {
	if err := os.MkdirAll(paths.Dir, 0755); err != nil {
		s.logger.Error("failed to initialize data directory", "dir", paths.Dir, "error", err)
		return
	}
	for _, path := range []string{paths.Users(), paths.Films(), paths.Playlists()} {
		if s.Exists(path) {
			continue
		}
		f, err := os.Create(path)
		if err != nil {
			s.logger.Error("failed to create data file", "path", path, "error", err)
			continue
		}
		f.Close()
	}
}

// ReadLines returns every line of the file in order. An unreadable file
// yields an empty result, with the condition logged.
func (s *Store) ReadLines(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		s.logger.Error("failed to read data file", "path", path, "error", err)
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	// Long synopses can push a record past bufio's default 64KB token
	// limit; a full line must never be truncated or dropped.
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		s.logger.Error("failed while scanning data file", "path", path, "error", err)
	}
	return lines
}

// WriteLines truncates the file and rewrites it from lines. A failure
// partway through can leave a partially written file.
func (s *Store) WriteLines(path string, lines []string) {
	f, err := os.Create(path)
	if err != nil {
		s.logger.Error("failed to write data file", "path", path, "error", err)
		return
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			s.logger.Error("failed writing record, data may be lost", "path", path, "error", err)
			return
		}
	}
	if err := w.Flush(); err != nil {
		s.logger.Error("failed flushing data file, data may be lost", "path", path, "error", err)
	}
}

// AppendLine appends a single line plus terminator to the file.
func (s *Store) AppendLine(path, line string) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		s.logger.Error("failed to open data file for append", "path", path, "error", err)
		return
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		s.logger.Error("failed appending record", "path", path, "error", err)
	}
}

// Exists reports whether a file is present at path.
func (s *Store) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

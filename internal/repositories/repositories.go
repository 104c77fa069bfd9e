// package repositories provides persistence layer implementations for all record types.
//
// Each repository loads the full collection from its line file, applies
// the operation in memory, and rewrites the file. There is no partial
// update and no locking: an index obtained from one load is only valid
// while no other mutation intervenes, and concurrent writers are
// last-writer-wins.
package repositories

import (
	"github.com/anaphygon/filmdex/internal/store"
)

// loadAll reads and decodes every line of a collection file.
// Lines that fail to decode are dropped.
func loadAll[T any](s *store.Store, path string, decode func(string) (T, bool)) []T {
	var records []T
	for _, line := range s.ReadLines(path) {
		if record, ok := decode(line); ok {
			records = append(records, record)
		}
	}
	return records
}

// saveAll encodes every record and rewrites the collection file.
func saveAll[T any](s *store.Store, path string, records []T, encode func(T) string) {
	lines := make([]string, 0, len(records))
	for _, record := range records {
		lines = append(lines, encode(record))
	}
	s.WriteLines(path, lines)
}

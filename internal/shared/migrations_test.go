package shared

import "testing"

func TestRunMigrations(t *testing.T) {
	db, err := NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Re-running applied migrations is a no-op.
	if err := RunMigrations(db); err != nil {
		t.Fatalf("re-running migrations failed: %v", err)
	}

	var name string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='movie_cache'").Scan(&name)
	if err != nil {
		t.Fatalf("movie_cache table should exist: %v", err)
	}
}

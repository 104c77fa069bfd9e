package formatter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/anaphygon/filmdex/internal/models"
	helpers "github.com/anaphygon/filmdex/internal/testing"
)

func testExport() *PlaylistExport {
	return &PlaylistExport{
		Playlist: models.NewPlaylist("Favorites", "a@b.com", "Public", []string{"1", "2"}),
		Films: []models.Film{
			models.NewFilm("1", "Inception", "Christopher Nolan", "Science Fiction", 2010, "A thief.", ""),
			models.NewFilm("2", "Heat", "Michael Mann", "Crime", 1995, "", ""),
		},
	}
}

func TestExportToCSV(t *testing.T) {
	data, err := ExportToCSV(testExport())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want header + 2 records", len(lines))
	}
	if lines[0] != "ID,Title,Director,Genre,Year" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Inception") {
		t.Errorf("first record = %q", lines[1])
	}
}

func TestExportToMarkdown(t *testing.T) {
	data, err := ExportToMarkdown(testExport())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	text := string(data)
	if !strings.HasPrefix(text, "# Favorites") {
		t.Errorf("markdown should lead with the playlist name, got %q", text[:20])
	}
	if !strings.Contains(text, "1. Inception (2010) - Christopher Nolan [Science Fiction]") {
		t.Errorf("markdown missing film entry:\n%s", text)
	}
	if !strings.Contains(text, "A thief.") {
		t.Error("markdown should include the synopsis when present")
	}
}

func TestExportToText(t *testing.T) {
	data, err := ExportToText(testExport())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(string(data), "2. Heat (1995)") {
		t.Errorf("text export missing entry:\n%s", data)
	}
}

func TestSaveToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports", "favorites.csv")

	if err := SaveToFile(path, []byte("a,b,c\n")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	helpers.AssertFileExists(t, path)
	if got := helpers.MustReadFile(t, path); got != "a,b,c\n" {
		t.Errorf("content = %q", got)
	}
}

// package formatter provides functions to export a playlist's films to
// various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/anaphygon/filmdex/internal/models"
)

// PlaylistExport bundles a playlist with its resolved films. Dangling
// film ids resolve to nothing and are simply absent from Films.
type PlaylistExport struct {
	Playlist models.Playlist
	Films    []models.Film
}

// ExportToCSV converts a PlaylistExport to CSV with columns: ID, Title, Director, Genre, Year
func ExportToCSV(export *PlaylistExport) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Director", "Genre", "Year"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, film := range export.Films {
		record := []string{
			film.ID,
			film.Title,
			film.Director,
			film.Genre,
			strconv.Itoa(film.Year),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a PlaylistExport to Markdown
func ExportToMarkdown(export *PlaylistExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", export.Playlist.Name))
	buf.WriteString(fmt.Sprintf("**Owner**: %s\n", export.Playlist.OwnerEmail))
	buf.WriteString(fmt.Sprintf("**Visibility**: %s\n", export.Playlist.Visibility))
	buf.WriteString(fmt.Sprintf("**Films**: %d\n\n", len(export.Films)))

	buf.WriteString("## Films\n\n")
	for i, film := range export.Films {
		buf.WriteString(fmt.Sprintf("%d. %s (%d) - %s [%s]\n", i+1, film.Title, film.Year, film.Director, film.Genre))
		if film.Synopsis != "" {
			buf.WriteString(fmt.Sprintf("   %s\n", film.Synopsis))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a PlaylistExport to plain text
func ExportToText(export *PlaylistExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", export.Playlist.Name))
	buf.WriteString(fmt.Sprintf("Owner: %s\n", export.Playlist.OwnerEmail))
	buf.WriteString(fmt.Sprintf("Films: %d\n\n", len(export.Films)))

	for i, film := range export.Films {
		buf.WriteString(fmt.Sprintf("%d. %s (%d)\n", i+1, film.Title, film.Year))
	}

	return buf.Bytes(), nil
}

// SaveToFile writes exported data to path, creating parent directories as needed.
func SaveToFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	return nil
}

// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/anaphygon/filmdex/internal/services"
)

// MockMetadata is a test double for [services.Metadata].
type MockMetadata struct {
	Movie *services.MovieData
	Err   error
	Calls int
}

func (m *MockMetadata) FetchMovie(ctx context.Context, id string) (*services.MovieData, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Movie != nil {
		return m.Movie, nil
	}
	return &services.MovieData{ID: id, Title: "Stub", Director: "Nobody", Genre: "Drama", Year: 2020}, nil
}

func (m *MockMetadata) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	Responses map[string]*http.Response
	Err       error
}

func NewMockRoundTripper(responses map[string]*http.Response, err error) *MockRoundTripper {
	return &MockRoundTripper{Responses: responses, Err: err}
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var best *http.Response
	bestLen := -1
	for prefix, resp := range m.Responses {
		if strings.HasPrefix(req.URL.Path, prefix) && len(prefix) > bestLen {
			best, bestLen = resp, len(prefix)
		}
	}
	if best != nil {
		return best, nil
	}
	return &http.Response{StatusCode: http.StatusNotFound, Body: http.NoBody}, nil
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func MustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

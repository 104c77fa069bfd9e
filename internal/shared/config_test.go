package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Data.Directory != "data" {
		t.Errorf("data directory = %q, want %q", config.Data.Directory, "data")
	}
	if config.TMDB.BaseURL == "" {
		t.Error("default TMDB base URL should be set")
	}
	if config.TMDB.RateLimit <= 0 {
		t.Error("default rate limit should be positive")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("ParsesFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[data]
directory = "/var/lib/filmdex"

[tmdb]
api_key = "abc123"
base_url = "https://api.themoviedb.org/3"
rate_limit = 2

[cache]
path = ":memory:"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Data.Directory != "/var/lib/filmdex" {
			t.Errorf("data directory = %q", config.Data.Directory)
		}
		if config.TMDB.APIKey != "abc123" {
			t.Errorf("api key = %q", config.TMDB.APIKey)
		}
		if config.Cache.Path != ":memory:" {
			t.Errorf("cache path = %q", config.Cache.Path)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("MalformedFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[data\nbroken"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected error for malformed config file")
		}
	})
}

func TestCreateConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := CreateConfigFile(path); err != nil {
		t.Fatalf("failed to create config file: %v", err)
	}
	if _, err := LoadConfig(path); err != nil {
		t.Errorf("created config should parse: %v", err)
	}
	if err := CreateConfigFile(path); err == nil {
		t.Error("expected error when config file already exists")
	}
}

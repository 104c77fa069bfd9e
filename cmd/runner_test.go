package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anaphygon/filmdex/internal/models"
	"github.com/anaphygon/filmdex/internal/shared"
	tu "github.com/anaphygon/filmdex/internal/testing"
	"github.com/urfave/cli/v3"
)

func testRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()
	output := &bytes.Buffer{}
	config := shared.DefaultConfig()
	config.Data.Directory = t.TempDir()
	runner := NewRunner(RunnerOpts{Config: config, Output: output})
	runner.store.Init(runner.paths)
	return runner, output
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			metadata := &tu.MockMetadata{}

			runner := NewRunner(RunnerOpts{
				Config:   config,
				Logger:   logger,
				Output:   output,
				Metadata: metadata,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.metadata != metadata {
				t.Error("expected metadata to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("derives repository paths from the data directory", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Data.Directory = t.TempDir()

			runner := NewRunner(RunnerOpts{Config: config})

			if !strings.HasPrefix(runner.paths.Users(), config.Data.Directory) {
				t.Errorf("expected paths under %s, got %s", config.Data.Directory, runner.paths.Users())
			}
			if runner.films == nil || runner.users == nil || runner.playlists == nil {
				t.Error("expected repositories to be constructed")
			}
			if runner.session == nil {
				t.Error("expected auth service to be constructed")
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes formatted text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.writePlain("hello %s", "world")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if output.String() != "hello world" {
				t.Errorf("expected 'hello world', got %q", output.String())
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &tu.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			err := runner.writePlain("test")

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("writePlainln", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlainln("done"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.String() != "\ndone\n" {
			t.Errorf("expected padded line, got %q", output.String())
		}
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		if len(commands) != 6 {
			t.Fatalf("expected 6 commands, got %d", len(commands))
		}

		expected := []string{"setup", "auth", "film", "playlist", "user", "tui"}
		for i, name := range expected {
			if commands[i].Name != name {
				t.Errorf("expected command %d to be %s, got %s", i, name, commands[i].Name)
			}
		}
	})
}

func TestRunnerCommands(t *testing.T) {
	run := func(t *testing.T, runner *Runner, args ...string) error {
		t.Helper()
		app := &cli.Command{Name: "filmdex", Commands: runner.register()}
		return app.Run(context.Background(), append([]string{"filmdex"}, args...))
	}

	t.Run("setup initializes the data directory", func(t *testing.T) {
		runner, output := testRunner(t)

		dir := t.TempDir()
		configPath := filepath.Join(dir, "config.toml")
		content := fmt.Sprintf("[data]\ndirectory = %q\n\n[cache]\npath = %q\n",
			filepath.Join(dir, "data"), filepath.Join(dir, "cache.db"))
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		if err := run(t, runner, "setup", "--config", configPath); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !strings.Contains(output.String(), "✓ Setup complete") {
			t.Errorf("expected setup summary, got %q", output.String())
		}
		for _, name := range []string{"users.txt", "films.txt", "playlists.txt"} {
			if _, err := os.Stat(filepath.Join(dir, "data", name)); err != nil {
				t.Errorf("expected %s to exist: %v", name, err)
			}
		}
		if _, err := os.Stat(filepath.Join(dir, "cache.db")); err != nil {
			t.Errorf("expected cache database to exist: %v", err)
		}
	})

	t.Run("film list reports an empty catalog", func(t *testing.T) {
		runner, output := testRunner(t)

		if err := run(t, runner, "film", "list"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "No films in the catalog") {
			t.Errorf("expected empty catalog message, got %q", output.String())
		}
	})

	t.Run("film list renders stored films as a table", func(t *testing.T) {
		runner, output := testRunner(t)
		runner.films.Add(models.Film{
			ID: "1", Title: "Tampopo", Director: "Juzo Itami",
			Genre: "Comedy", Year: 1985, Synopsis: "A noodle western", Visible: true,
		})

		if err := run(t, runner, "film", "list"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		result := output.String()
		if !strings.Contains(result, "Tampopo") {
			t.Errorf("expected film title in output, got %q", result)
		}
		if !strings.Contains(result, "1 film(s)") {
			t.Errorf("expected film count in output, got %q", result)
		}
	})

	t.Run("film list hides invisible films without --all", func(t *testing.T) {
		runner, output := testRunner(t)
		runner.films.Add(models.Film{ID: "1", Title: "Visible", Year: 2000, Visible: true})
		runner.films.Add(models.Film{ID: "2", Title: "Shelved", Year: 2001, Visible: false})

		if err := run(t, runner, "film", "list"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if strings.Contains(output.String(), "Shelved") {
			t.Errorf("expected hidden film to be omitted, got %q", output.String())
		}

		output.Reset()
		if err := run(t, runner, "film", "list", "--all"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "Shelved") {
			t.Errorf("expected hidden film with --all, got %q", output.String())
		}
	})

	t.Run("user list includes the bootstrapped admin", func(t *testing.T) {
		runner, output := testRunner(t)
		runner.session.Bootstrap()

		if err := run(t, runner, "user", "list"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "anaphygon@protonmail.com") {
			t.Errorf("expected admin account in output, got %q", output.String())
		}
	})
}

package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	os.WriteFile(path, []byte(`{"name": "before"}`), 0o644)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan *Config, 1)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w, err := Watch(cfg, logger, func(c *Config) {
		select {
		case reloaded <- c:
		default:
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	os.WriteFile(path, []byte(`{"name": "after"}`), 0o644)

	select {
	case c := <-reloaded:
		if c.Name != "after" {
			t.Errorf("Reloaded name = %q", c.Name)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for reload")
	}
}

func TestWatcherSkipsBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	os.WriteFile(path, []byte(`{"name": "good"}`), 0o644)

	cfg, _ := LoadFile(path)

	reloaded := make(chan *Config, 4)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w, err := Watch(cfg, logger, func(c *Config) { reloaded <- c })
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	// A save that no longer parses must not reach the callback.
	os.WriteFile(path, []byte(`{broken`), 0o644)

	select {
	case c := <-reloaded:
		t.Errorf("Broken config reached the callback: %+v", c)
	case <-time.After(600 * time.Millisecond):
	}

	// Fixing the file resumes reloads.
	os.WriteFile(path, []byte(`{"name": "fixed"}`), 0o644)
	select {
	case c := <-reloaded:
		if c.Name != "fixed" {
			t.Errorf("Name = %q", c.Name)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for recovery reload")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	os.WriteFile(path, []byte(`{"name": "x"}`), 0o644)

	cfg, _ := LoadFile(path)

	reloaded := make(chan *Config, 1)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w, err := Watch(cfg, logger, func(c *Config) { reloaded <- c })
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644)

	select {
	case <-reloaded:
		t.Error("Unrelated file triggered a reload")
	case <-time.After(600 * time.Millisecond):
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Demo.ErrorMessage == "" {
		t.Error("expected a default error message")
	}
	if cfg.Demo.InfoMessage == "" {
		t.Error("expected a default info message")
	}
	if !cfg.UI.AltScreen {
		t.Error("expected alt screen on by default")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := DefaultConfig()
	if cfg.Demo.ErrorMessage != want.Demo.ErrorMessage {
		t.Errorf("expected default error message, got %q", cfg.Demo.ErrorMessage)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	data := `{"demo": {"errorMessage": "Sync failed", "infoMessage": "Synced"}, "ui": {"altScreen": false}}`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Demo.ErrorMessage != "Sync failed" {
		t.Errorf("expected %q, got %q", "Sync failed", cfg.Demo.ErrorMessage)
	}
	if cfg.Demo.InfoMessage != "Synced" {
		t.Errorf("expected %q, got %q", "Synced", cfg.Demo.InfoMessage)
	}
	if cfg.UI.AltScreen {
		t.Error("expected alt screen disabled")
	}
}

func TestLoad_PartialFileMergesDefaults(t *testing.T) {
	dir := t.TempDir()
	data := `{"demo": {"errorMessage": "Sync failed"}}`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Demo.ErrorMessage != "Sync failed" {
		t.Errorf("expected the file's error message, got %q", cfg.Demo.ErrorMessage)
	}
	if cfg.Demo.InfoMessage != DefaultConfig().Demo.InfoMessage {
		t.Errorf("expected the default info message, got %q", cfg.Demo.InfoMessage)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Demo.ErrorMessage = "Export failed"

	if err := Save(cfg, filepath.Join(dir, FileName)); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := Load(dir)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Demo.ErrorMessage != "Export failed" {
		t.Errorf("expected round-tripped message, got %q", reloaded.Demo.ErrorMessage)
	}
}

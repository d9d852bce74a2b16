package search

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Recursive {
		t.Error("DefaultConfig should be recursive")
	}
	if cfg.TraversalOrder != BreadthFirst {
		t.Errorf("DefaultConfig TraversalOrder = %q, want %q", cfg.TraversalOrder, BreadthFirst)
	}
	if cfg.Workers < 1 {
		t.Error("DefaultConfig should default to at least one worker")
	}
}

func TestConfigSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := DefaultConfig()
	cfg.Root = "/data"
	cfg.Extension = "go"
	cfg.MinSize = 1024
	cfg.GrepPattern = "TODO"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded != cfg {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", loaded, cfg)
	}
}

func TestLoadConfigMissingFieldsDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.json")
	partial := map[string]any{"extension": "py"}
	data, _ := json.Marshal(partial)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writeFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Extension != "py" {
		t.Errorf("Extension = %q, want py", cfg.Extension)
	}
	if !cfg.Recursive {
		t.Error("missing fields should keep DefaultConfig's Recursive=true")
	}
}

func TestLoadConfigIgnoresUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unknown.json")
	data := []byte(`{"extension":"go","totally_unknown_field":42}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writeFile: %v", err)
	}

	if _, err := LoadConfig(path); err != nil {
		t.Errorf("unknown fields should be ignored, got error: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/path/config.json"); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestParseHumanSize(t *testing.T) {
	n, err := ParseHumanSize("10MB")
	if err != nil {
		t.Fatalf("ParseHumanSize: %v", err)
	}
	if n <= 0 {
		t.Errorf("ParseHumanSize(10MB) = %d, want > 0", n)
	}
	if n, err := ParseHumanSize(""); err != nil || n != 0 {
		t.Errorf("ParseHumanSize(\"\") = %d, %v; want 0, nil", n, err)
	}
	if _, err := ParseHumanSize("not-a-size"); err == nil {
		t.Error("expected an error for an invalid size string")
	}
}

func TestParseISODate(t *testing.T) {
	start, err := ParseISODate("2026-03-15", false)
	if err != nil {
		t.Fatalf("ParseISODate: %v", err)
	}
	end, err := ParseISODate("2026-03-15", true)
	if err != nil {
		t.Fatalf("ParseISODate: %v", err)
	}
	if end <= start {
		t.Errorf("end-of-day timestamp %d should be after start-of-day %d", end, start)
	}
	if end-start != 23*3600+59*60+59 {
		t.Errorf("end-start = %d, want 86399", end-start)
	}

	if _, err := ParseISODate("not-a-date", false); err == nil {
		t.Error("expected an error for an invalid date string")
	}
}

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "numerals: stack\nsteps: 500\ntrace: true\ntrace_filter: WHILE\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Numerals != "stack" {
		t.Errorf("Numerals = %q, want %q", cfg.Numerals, "stack")
	}
	if cfg.Steps != 500 {
		t.Errorf("Steps = %d, want 500", cfg.Steps)
	}
	if !cfg.Trace {
		t.Error("Trace = false, want true")
	}
	if cfg.TraceFilter != "WHILE" {
		t.Errorf("TraceFilter = %q, want %q", cfg.TraceFilter, "WHILE")
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, "numerals: positional\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Numerals != "positional" {
		t.Errorf("Numerals = %q, want %q", cfg.Numerals, "positional")
	}
	if cfg.Steps != 0 || cfg.Trace || cfg.TraceFilter != "" {
		t.Errorf("unset fields not zero: %+v", cfg)
	}
}

func TestLoadConfigEmptyFile(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("empty file config = %+v, want zero value", cfg)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := writeConfig(t, "numeral_grammar: stack\n")

	_, err := loadConfig(path)
	if err == nil {
		t.Fatal("loadConfig() error = nil, want unknown-field error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want mention of unknown field", err)
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("loadConfig() error = nil, want missing-file error")
	}
}

func TestLoadConfigMissingDefault(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("missing default config = %+v, want zero value", cfg)
	}
}

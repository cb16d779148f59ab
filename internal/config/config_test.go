package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vidcut/internal/config"
	"vidcut/internal/testsupport"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	testsupport.Chdir(t, t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if cfg.Output.Suffix != "_cut" {
		t.Fatalf("unexpected default suffix: %q", cfg.Output.Suffix)
	}
	if cfg.Output.Overwrite {
		t.Fatal("expected overwrite disabled by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.FFmpeg.Binary != "" {
		t.Fatalf("expected no default ffmpeg override, got %q", cfg.FFmpeg.Binary)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := strings.Join([]string{
		"[ffmpeg]",
		`binary = "/opt/ffmpeg/bin/ffmpeg"`,
		"[output]",
		`suffix = "_clip"`,
		"overwrite = true",
		"[logging]",
		`format = "JSON"`,
		`level = " Debug "`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected to load %q, got %q exists=%v", path, resolved, exists)
	}
	if cfg.FFmpeg.Binary != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("unexpected binary: %q", cfg.FFmpeg.Binary)
	}
	if cfg.Output.Suffix != "_clip" || !cfg.Output.Overwrite {
		t.Fatalf("unexpected output settings: %+v", cfg.Output)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("normalization failed: %+v", cfg.Logging)
	}
}

func TestLoadRejectsBadLoggingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unsupported log format")
	}
}

func TestLoadRejectsSuffixWithSeparator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[output]\nsuffix = \"a/b\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for suffix containing a path separator")
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Output.Suffix != "_cut" {
		t.Fatalf("unexpected sample suffix: %q", cfg.Output.Suffix)
	}
}

func TestExpandPathTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/videos")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(tempHome, "videos") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}

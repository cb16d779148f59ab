package ffmpeg_test

import (
	"os"
	"path/filepath"
	"testing"

	"vidcut/internal/ffmpeg"
)

func writeStub(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}

func TestResolveBinaryPrefersExplicitPath(t *testing.T) {
	dir := t.TempDir()
	stub := writeStub(t, dir, "custom-ffmpeg")
	t.Setenv("PATH", "")

	got, err := ffmpeg.ResolveBinary(stub)
	if err != nil {
		t.Fatalf("ResolveBinary returned error: %v", err)
	}
	if got != stub {
		t.Fatalf("expected %q, got %q", stub, got)
	}
}

func TestResolveBinaryExplicitMissingFails(t *testing.T) {
	t.Setenv("PATH", "")
	if _, err := ffmpeg.ResolveBinary(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing explicit binary")
	}
}

func TestResolveBinaryEnvOverride(t *testing.T) {
	dir := t.TempDir()
	stub := writeStub(t, dir, "env-ffmpeg")
	t.Setenv("PATH", "")
	t.Setenv(ffmpeg.EnvBinary, stub)

	got, err := ffmpeg.ResolveBinary("")
	if err != nil {
		t.Fatalf("ResolveBinary returned error: %v", err)
	}
	if got != stub {
		t.Fatalf("expected %q, got %q", stub, got)
	}
}

func TestResolveBinaryFallsBackToPath(t *testing.T) {
	dir := t.TempDir()
	stub := writeStub(t, dir, "ffmpeg")
	t.Setenv("PATH", dir)
	t.Setenv(ffmpeg.EnvBinary, "")

	got, err := ffmpeg.ResolveBinary("")
	if err != nil {
		t.Fatalf("ResolveBinary returned error: %v", err)
	}
	if got != stub {
		t.Fatalf("expected %q, got %q", stub, got)
	}
}

func TestResolveBinaryNothingAvailable(t *testing.T) {
	t.Setenv("PATH", "")
	t.Setenv(ffmpeg.EnvBinary, "")
	if _, err := ffmpeg.ResolveBinary(""); err == nil {
		t.Fatal("expected error when ffmpeg cannot be located")
	}
}

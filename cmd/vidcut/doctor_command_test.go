package main

import (
	"path/filepath"
	"strings"
	"testing"

	"vidcut/internal/testsupport"
)

func TestDoctorReportsResolvedBinaryAndVersion(t *testing.T) {
	binDir := isolate(t, `echo "ffmpeg version 7.1-test Copyright"`)

	out, err := runCLI(t, "doctor")
	if err != nil {
		t.Fatalf("doctor returned error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "ffmpeg: "+filepath.Join(binDir, "ffmpeg")) {
		t.Fatalf("expected resolved binary path:\n%s", out)
	}
	if !strings.Contains(out, "ffmpeg version 7.1-test") {
		t.Fatalf("expected version line:\n%s", out)
	}
	if !strings.Contains(out, "FFmpeg") || !strings.Contains(out, "yes") {
		t.Fatalf("expected availability table:\n%s", out)
	}
}

func TestDoctorFailsWhenFFmpegMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VIDCUT_FFMPEG", "")
	testsupport.Chdir(t, t.TempDir())

	_, err := runCLI(t, "doctor")
	if err == nil || !strings.Contains(err.Error(), "ffmpeg not found") {
		t.Fatalf("expected resolution failure, got %v", err)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	isolate(t, "")
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init returned error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Wrote sample configuration to "+target) {
		t.Fatalf("unexpected output:\n%s", out)
	}

	if _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when the file already exists")
	}
	if out, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("overwrite should succeed: %v\n%s", err, out)
	}
}

func TestConfigShowPrintsResolvedValues(t *testing.T) {
	isolate(t, "")

	out, err := runCLI(t, "config", "show", "-c", filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("config show returned error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "suffix = '_cut'") && !strings.Contains(out, `suffix = "_cut"`) {
		t.Fatalf("expected default suffix in output:\n%s", out)
	}
}

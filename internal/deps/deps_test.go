package deps_test

import (
	"os"
	"path/filepath"
	"testing"

	"vidcut/internal/deps"
)

func TestCheckBinariesReportsAvailability(t *testing.T) {
	dir := t.TempDir()
	stub := filepath.Join(dir, "ffmpeg")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", dir)

	statuses := deps.CheckBinaries([]deps.Requirement{
		{Name: "FFmpeg", Command: "ffmpeg", Description: "transcoding"},
		{Name: "Missing", Command: "definitely-not-installed"},
		{Name: "Unconfigured", Command: "  "},
	})
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
	if !statuses[0].Available || statuses[0].Resolved != stub {
		t.Fatalf("expected ffmpeg available at %q, got %+v", stub, statuses[0])
	}
	if statuses[1].Available || statuses[1].Detail == "" {
		t.Fatalf("expected missing binary flagged: %+v", statuses[1])
	}
	if statuses[2].Available || statuses[2].Detail != "command not configured" {
		t.Fatalf("expected unconfigured detail: %+v", statuses[2])
	}
}

package cutter_test

import (
	"path/filepath"
	"testing"

	"vidcut/internal/cutter"
	"vidcut/internal/testsupport"
)

func TestExpandInputsGlobsAndDeduplicates(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.mp4")
	b := filepath.Join(dir, "b.mp4")
	testsupport.WriteFile(t, a, 1)
	testsupport.WriteFile(t, b, 1)

	got, err := cutter.ExpandInputs([]string{filepath.Join(dir, "*.mp4"), a, "plain.mkv"})
	if err != nil {
		t.Fatalf("ExpandInputs returned error: %v", err)
	}
	want := []string{a, b, "plain.mkv"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestExpandInputsKeepsMissingPlainArguments(t *testing.T) {
	got, err := cutter.ExpandInputs([]string{"missing.mkv"})
	if err != nil {
		t.Fatalf("ExpandInputs returned error: %v", err)
	}
	if len(got) != 1 || got[0] != "missing.mkv" {
		t.Fatalf("plain arguments should pass through: %v", got)
	}
}

func TestExpandInputsRejectsBadPattern(t *testing.T) {
	if _, err := cutter.ExpandInputs([]string{"[unclosed"}); err == nil {
		t.Fatal("expected error for malformed pattern")
	}
}

func TestDeriveOutput(t *testing.T) {
	cases := []struct {
		input  string
		suffix string
		want   string
	}{
		{"/media/video.mp4", "_cut", "/media/video_cut.mp4"},
		{"video.mp4", "", "video_cut.mp4"},
		{"/media/clip.final.mkv", "_trim", "/media/clip.final_trim.mkv"},
		{"noext", "_cut", "noext_cut"},
	}
	for _, tc := range cases {
		if got := cutter.DeriveOutput(tc.input, tc.suffix); got != tc.want {
			t.Fatalf("DeriveOutput(%q, %q) = %q, want %q", tc.input, tc.suffix, got, tc.want)
		}
	}
}

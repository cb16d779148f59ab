package ffmpeg

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EnvBinary overrides the ffmpeg executable without touching flags or config.
const EnvBinary = "VIDCUT_FFMPEG"

// ResolveBinary picks the ffmpeg executable to invoke. Resolution order:
// the explicit value (a PATH name or a direct file path), the VIDCUT_FFMPEG
// environment variable, then "ffmpeg" on PATH.
func ResolveBinary(explicit string) (string, error) {
	explicit = strings.TrimSpace(explicit)
	if explicit != "" {
		if resolved, err := exec.LookPath(explicit); err == nil {
			return resolved, nil
		}
		if info, err := os.Stat(explicit); err == nil && !info.IsDir() {
			return explicit, nil
		}
		return "", fmt.Errorf("ffmpeg binary %q not found", explicit)
	}

	if env := strings.TrimSpace(os.Getenv(EnvBinary)); env != "" {
		if info, err := os.Stat(env); err == nil && !info.IsDir() {
			return env, nil
		}
	}

	if resolved, err := exec.LookPath("ffmpeg"); err == nil {
		return resolved, nil
	}
	return "", fmt.Errorf("ffmpeg not found on PATH; install it or set %s", EnvBinary)
}

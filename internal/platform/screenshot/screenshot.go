// Package screenshot saves screen buffers as plain text files.
package screenshot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Dir returns the default screenshot directory, ~/.dragon/screenshots.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return filepath.Join(home, ".dragon", "screenshots"), nil
}

// Save writes the screen to a timestamped file in dir and returns its path.
func Save(dir string, s *core.Screen, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: create dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("dragon_%s.txt", now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

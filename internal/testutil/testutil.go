// Package testutil provides common test helpers for the poshhook project.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// TempThemeFile creates an empty renderer theme file and returns its path.
func TempThemeFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "theme.omp.json")
	if err := os.WriteFile(path, []byte("{}\n"), 0600); err != nil {
		t.Fatalf("TempThemeFile: write failed: %v", err)
	}

	return path
}

// HistoryEntry is one command in a xonsh JSON history file.
type HistoryEntry struct {
	Rtn int
	TS  [2]float64
}

// TempXonshHistory writes a xonsh JSON history file containing the given
// commands, oldest first, and returns its path.
func TempXonshHistory(t *testing.T, entries ...HistoryEntry) string {
	t.Helper()

	cmds := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		cmds = append(cmds, map[string]any{
			"inp": "cmd\n",
			"rtn": e.Rtn,
			"ts":  []float64{e.TS[0], e.TS[1]},
		})
	}
	data, err := json.Marshal(map[string]any{"data": map[string]any{"cmds": cmds}})
	if err != nil {
		t.Fatalf("TempXonshHistory: marshal failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "xonsh-history.json")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("TempXonshHistory: write failed: %v", err)
	}

	return path
}

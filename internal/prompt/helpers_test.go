package prompt_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/poshhook/internal/cmdexec"
)

func realCommander() cmdexec.Commander {
	return &cmdexec.RealCommander{}
}

// writeStub writes an executable renderer stand-in and returns its path.
func writeStub(t *testing.T, dir, script string) string {
	t.Helper()

	path := filepath.Join(dir, "oh-my-posh")
	if err := os.WriteFile(path, []byte(script), 0700); err != nil {
		t.Fatalf("writeStub: %v", err)
	}
	return path
}

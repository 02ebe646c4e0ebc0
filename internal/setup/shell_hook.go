package setup

import (
	"fmt"
	"os"
	"strings"

	"github.com/hbjs97/poshhook/internal/shell"
)

// InstallShellHook은 셸 RC 파일에 poshhook hook을 추가한다.
// 이미 설치되어 있으면 건너뛰고 false를 반환한다.
func InstallShellHook(shellType, binary, rcPath string) (bool, error) {
	snippet := shell.HookSnippet(shellType, binary)
	if snippet == "" {
		return false, fmt.Errorf("setup.InstallShellHook: %w: %s", shell.ErrUnsupportedShell, shellType)
	}

	existing, _ := os.ReadFile(rcPath) // 파일이 없으면 빈 바이트
	if strings.Contains(string(existing), "poshhook shell integration") {
		return false, nil // 이미 설치됨
	}

	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return false, fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s", snippet); err != nil {
		return false, fmt.Errorf("setup.InstallShellHook: %w", err)
	}

	return true, nil
}

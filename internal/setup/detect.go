package setup

import (
	"os"
	"path/filepath"

	"github.com/hbjs97/poshhook/internal/shell"
)

// DetectShell은 현재 사용자의 셸을 감지한다.
// xonsh는 보통 로그인 셸이 아니므로 XONSH_VERSION을 먼저 확인한다.
func DetectShell() string {
	if os.Getenv("XONSH_VERSION") != "" {
		return shell.Xonsh
	}
	sh := os.Getenv("SHELL")
	if sh == "" {
		return ""
	}
	return filepath.Base(sh)
}

// ShellRCPath는 셸별 RC 파일 경로를 반환한다.
func ShellRCPath(shellType string) string {
	home, _ := os.UserHomeDir() // 홈 디렉토리 조회 실패 시 빈 문자열
	switch shellType {
	case shell.Xonsh:
		return filepath.Join(home, ".xonshrc")
	default:
		return ""
	}
}

package cli

import (
	"github.com/hbjs97/poshhook/internal/config"
	"github.com/hbjs97/poshhook/internal/prompt"
	"github.com/hbjs97/poshhook/internal/shell"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
	// ErrRendererMissing는 렌더러 실행 파일이 없을 때의 sentinel error다.
	ErrRendererMissing = prompt.ErrRendererMissing
	// ErrUnsupportedShell는 init 스크립트가 없는 셸일 때의 sentinel error다.
	ErrUnsupportedShell = shell.ErrUnsupportedShell
)

package prompt

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"

	"github.com/hbjs97/poshhook/internal/cmdexec"
	"github.com/hbjs97/poshhook/internal/history"
	"github.com/hbjs97/poshhook/internal/host"
	"github.com/hbjs97/poshhook/internal/logger"
	"github.com/hbjs97/poshhook/internal/session"
)

// ErrRendererMissing는 렌더러 실행 파일을 찾을 수 없을 때의 sentinel error다.
var ErrRendererMissing = errors.New("renderer executable not found")

// Hook은 하나의 셸 세션에 묶인 프롬프트 렌더러 호출자다.
type Hook struct {
	Executable string
	Session    session.Context
	Variant    Variant
	History    history.LatestCommandProvider
	Commander  cmdexec.Commander
	Logger     *logger.Logger
}

// Env는 렌더러 프로세스에 전달하는 세션 환경변수다.
func (h *Hook) Env() map[string]string {
	env := map[string]string{
		host.EnvPowerlineCommand: h.Executable,
		host.EnvTheme:            h.Session.ThemePath,
		host.EnvSessionID:        h.Session.SessionID,
	}
	if h.Variant.SendsShellVersion() {
		env[host.EnvShellVersion] = h.Session.ShellVersion
	}
	return env
}

// Render는 렌더러를 한 번 실행하고 stdout을 끝의 줄바꿈만 제거해 반환한다.
// 렌더러가 0이 아닌 코드로 종료해도 그때까지의 stdout을 함께 반환한다.
func (h *Hook) Render(ctx context.Context, kind Kind) (string, error) {
	status, durationMs := history.CommandContext(h.History)
	args := Args(kind, h.Session, h.Variant, status, durationMs)

	out, err := h.Commander.RunWithEnv(ctx, h.Env(), h.Executable, args...)
	text := strings.TrimRight(string(out), "\r\n")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("prompt.Render: %w: %s", ErrRendererMissing, h.Executable)
		}
		return text, fmt.Errorf("prompt.Render: %s %s: %w", h.Executable, kind, err)
	}
	return text, nil
}

// Primary는 왼쪽 프롬프트를 렌더링한다.
func (h *Hook) Primary(ctx context.Context) string {
	return h.render(ctx, Primary)
}

// Right는 오른쪽 프롬프트를 렌더링한다.
func (h *Hook) Right(ctx context.Context) string {
	return h.render(ctx, Right)
}

func (h *Hook) render(ctx context.Context, kind Kind) string {
	text, err := h.Render(ctx, kind)
	if err != nil {
		h.log().Debug("prompt render failed", "kind", kind, "error", err)
	}
	return text
}

func (h *Hook) log() *logger.Logger {
	if h.Logger == nil {
		return logger.Nop()
	}
	return h.Logger
}

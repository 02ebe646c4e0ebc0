package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hbjs97/poshhook/internal/cmdexec"
	"github.com/hbjs97/poshhook/internal/config"
	"github.com/hbjs97/poshhook/internal/host"
	"github.com/hbjs97/poshhook/internal/prompt"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckRenderer는 렌더러 실행 파일 존재 여부를 확인한다.
func CheckRenderer(ctx context.Context, cmd cmdexec.Commander, executable string) DiagResult {
	out, err := cmd.Run(ctx, executable, "--version")
	if err != nil {
		return DiagResult{
			Name:    "renderer",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 실행 실패", executable),
			Fix:     "설치: https://ohmyposh.dev/docs/installation",
		}
	}
	return DiagResult{
		Name:    "renderer",
		Status:  StatusOK,
		Message: fmt.Sprintf("%s %s", executable, strings.TrimSpace(string(out))),
	}
}

// CheckTheme는 테마 파일을 읽을 수 있는지 확인한다. 비어 있으면 렌더러 기본 테마를 쓴다.
func CheckTheme(path string) DiagResult {
	if path == "" {
		return DiagResult{
			Name:    "theme",
			Status:  StatusWarn,
			Message: "테마 미지정 — 렌더러 기본 테마 사용",
			Fix:     "config.toml에 theme 지정 또는 POSH_THEME 설정",
		}
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return DiagResult{
			Name:    "theme",
			Status:  StatusFail,
			Message: fmt.Sprintf("테마 파일 없음: %s", path),
			Fix:     "theme 경로 확인",
		}
	}
	return DiagResult{
		Name:    "theme",
		Status:  StatusOK,
		Message: path,
	}
}

// CheckShellVersion은 셸 버전이 전달 가능한지 확인한다.
func CheckShellVersion(version string) DiagResult {
	if version == "" {
		return DiagResult{
			Name:    "shell_version",
			Status:  StatusWarn,
			Message: "XONSH_VERSION 없음 — xonsh 밖에서 실행 중",
			Fix:     "xonsh 안에서 poshhook doctor 실행",
		}
	}
	return DiagResult{
		Name:    "shell_version",
		Status:  StatusOK,
		Message: fmt.Sprintf("xonsh %s", version),
	}
}

// CheckRender는 메모리 셸에 훅을 설치하고 primary 프롬프트를 한 번 렌더링한다.
// 업그레이드 안내와 자동 업그레이드는 실행하지 않는다.
func CheckRender(ctx context.Context, cmd cmdexec.Commander, cfg *config.Config, shellVersion string) DiagResult {
	variant, err := prompt.ParseVariant(cfg.Variant)
	if err != nil {
		return DiagResult{Name: "render", Status: StatusFail, Message: err.Error()}
	}

	sh := host.NewMemory(map[string]string{host.EnvXonshVersion: shellVersion}, nil)
	hook := prompt.Install(ctx, sh, prompt.Options{
		Executable: cfg.Executable,
		ThemePath:  cfg.ThemePath(),
		Shell:      cfg.Shell,
		Variant:    variant,
	}, nil, cmd, nil)

	text, err := hook.Render(ctx, prompt.Primary)
	if err != nil {
		return DiagResult{
			Name:    "render",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     fmt.Sprintf("%s print primary 직접 실행해 오류 확인", cfg.Executable),
		}
	}
	if text == "" {
		return DiagResult{
			Name:    "render",
			Status:  StatusWarn,
			Message: "렌더러 출력이 비어 있음",
		}
	}
	return DiagResult{
		Name:    "render",
		Status:  StatusOK,
		Message: fmt.Sprintf("primary 프롬프트 %d bytes", len(text)),
	}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, cfg *config.Config, shellVersion string) []DiagResult {
	results := []DiagResult{
		CheckRenderer(ctx, cmd, cfg.Executable),
		CheckTheme(cfg.ThemePath()),
		CheckShellVersion(shellVersion),
	}
	if results[0].Status == StatusOK {
		results = append(results, CheckRender(ctx, cmd, cfg, shellVersion))
	}
	return results
}

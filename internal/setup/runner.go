package setup

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hbjs97/poshhook/internal/cmdexec"
	"github.com/hbjs97/poshhook/internal/config"
	"github.com/hbjs97/poshhook/internal/doctor"
	"github.com/hbjs97/poshhook/internal/host"
	"github.com/hbjs97/poshhook/internal/shell"
)

// Runner는 interactive setup의 진입점이다.
type Runner struct {
	CfgPath    string
	Commander  cmdexec.Commander
	FormRunner FormRunner
	Binary     string    // rc 스니펫에 들어갈 poshhook 실행 파일 이름
	RCPath     string    // 테스트용. 비어있으면 감지된 셸의 기본 경로.
	Out        io.Writer // 비어있으면 os.Stdout
}

// Run은 setup 플로우를 실행한다.
// 설정 파일이 이미 있으면 그 값을 폼의 초기값으로 쓰고, 덮어쓰기 전에 확인한다.
func (r *Runner) Run(ctx context.Context) error {
	cfg, err := config.Load(r.CfgPath)
	if err != nil {
		return err
	}

	_, statErr := os.Stat(r.CfgPath)
	exists := statErr == nil
	if exists {
		ok, err := r.FormRunner.RunConfirm(fmt.Sprintf("%s 설정을 수정하시겠습니까?", r.CfgPath))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(r.out(), "변경 없이 종료합니다.")
			return nil
		}
	}

	input, err := r.FormRunner.RunConfigForm(Input{
		Executable:    cfg.Executable,
		Theme:         cfg.Theme,
		Variant:       cfg.Variant,
		UpgradeNotice: cfg.Upgrade.Notice,
		AutoUpgrade:   cfg.Upgrade.Auto,
	})
	if err != nil {
		return err
	}

	cfg.Executable = input.Executable
	cfg.Theme = input.Theme
	cfg.Variant = input.Variant
	cfg.Upgrade.Notice = input.UpgradeNotice
	cfg.Upgrade.Auto = input.AutoUpgrade

	if err := config.Save(r.CfgPath, cfg); err != nil {
		return err
	}
	fmt.Fprintf(r.out(), "설정 파일이 저장되었습니다: %s\n", r.CfgPath)

	r.installHook()
	r.runDoctor(ctx, cfg)
	return nil
}

func (r *Runner) installHook() {
	rcPath := r.RCPath
	shellType := DetectShell()
	if rcPath == "" {
		rcPath = ShellRCPath(shellType)
	}
	if rcPath == "" {
		fmt.Fprintf(r.out(), "셸 hook을 설치하지 않았습니다 (감지된 셸: %q). xonsh rc 파일에 직접 추가하세요.\n", shellType)
		return
	}

	installed, err := InstallShellHook(shell.Xonsh, r.binary(), rcPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 셸 hook 설치 실패: %v\n", err)
		return
	}
	if installed {
		fmt.Fprintf(r.out(), "셸 hook이 설치되었습니다: %s\n", rcPath)
	}
}

// runDoctor는 설정 완료 후 환경 진단을 실행한다.
func (r *Runner) runDoctor(ctx context.Context, cfg *config.Config) {
	fmt.Fprintln(r.out(), "\n환경 진단 실행 중...")
	for _, res := range doctor.RunAll(ctx, r.Commander, cfg, os.Getenv(host.EnvXonshVersion)) {
		icon := "✓"
		if res.Status == doctor.StatusFail {
			icon = "✗"
		} else if res.Status == doctor.StatusWarn {
			icon = "!"
		}
		fmt.Fprintf(r.out(), "  [%s] %s: %s\n", icon, res.Name, res.Message)
	}
}

func (r *Runner) binary() string {
	if r.Binary == "" {
		return "poshhook"
	}
	return r.Binary
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

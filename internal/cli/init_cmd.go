package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/poshhook/internal/config"
	"github.com/hbjs97/poshhook/internal/session"
	"github.com/hbjs97/poshhook/internal/setup"
	"github.com/hbjs97/poshhook/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newInitCmd() *cobra.Command {
	var install bool
	var rcPath string

	cmd := &cobra.Command{
		Use:       "init [shell]",
		Short:     "셸 init 스크립트를 출력한다",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{shell.Xonsh},
		RunE: func(cmd *cobra.Command, args []string) error {
			shellType := shell.Xonsh
			if len(args) == 1 {
				shellType = args[0]
			}
			if install {
				return a.runInstallHook(cmd, shellType, rcPath)
			}
			return a.runInit(cmd, shellType)
		},
	}
	cmd.Flags().BoolVar(&install, "install", false, "셸 rc 파일에 init 로드 스니펫을 추가")
	cmd.Flags().StringVar(&rcPath, "rc", "", "rc 파일 경로 (기본: 셸별 기본 경로)")
	return cmd
}

func (a *App) runInit(cmd *cobra.Command, shellType string) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	sc := session.New(cfg.ThemePath(), shellType, "")
	script, err := shell.Script(shellType, shell.ScriptOptions{
		Executable:     cfg.Executable,
		Config:         sc.ThemePath,
		SessionID:      sc.SessionID,
		Legacy:         cfg.IsLegacy(),
		UpgradeNotice:  cfg.Upgrade.Notice,
		UpgradeMessage: cfg.UpgradeMessage(),
		AutoUpgrade:    cfg.Upgrade.Auto,
	})
	if err != nil {
		return err
	}

	a.log().Debug("init script generated", "shell", shellType, "session", sc.SessionID)
	fmt.Fprint(cmd.OutOrStdout(), script)
	return nil
}

func (a *App) runInstallHook(cmd *cobra.Command, shellType, rcPath string) error {
	if rcPath == "" {
		rcPath = setup.ShellRCPath(shellType)
	}
	if rcPath == "" {
		return fmt.Errorf("cli.init: %w: %s", ErrUnsupportedShell, shellType)
	}

	installed, err := setup.InstallShellHook(shellType, selfBinary(), rcPath)
	if err != nil {
		return err
	}
	if installed {
		fmt.Fprintf(cmd.OutOrStdout(), "셸 hook이 설치되었습니다: %s\n", rcPath)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "셸 hook이 이미 설치되어 있습니다: %s\n", rcPath)
	}
	return nil
}

// selfBinary는 rc 스니펫에 넣을 poshhook 실행 파일 이름이다.
func selfBinary() string {
	exe, err := os.Executable()
	if err != nil {
		return "poshhook"
	}
	return filepath.ToSlash(exe)
}

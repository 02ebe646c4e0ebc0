package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/hbjs97/poshhook/internal/config"
	"github.com/hbjs97/poshhook/internal/history"
	"github.com/hbjs97/poshhook/internal/host"
	"github.com/hbjs97/poshhook/internal/prompt"
	"github.com/hbjs97/poshhook/internal/session"
	"github.com/spf13/cobra"
)

func (a *App) newPrintCmd() *cobra.Command {
	var historyPath string
	var status, executionTime int

	cmd := &cobra.Command{
		Use:       "print primary|right",
		Short:     "프롬프트를 렌더링해 출력한다",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(prompt.Primary), string(prompt.Right)},
		RunE: func(cmd *cobra.Command, args []string) error {
			var hist history.LatestCommandProvider
			if cmd.Flags().Changed("status") || cmd.Flags().Changed("execution-time") {
				hist = history.Fixed{Status: status, DurationMs: executionTime}
			} else {
				records, err := history.LoadXonsh(historyPath)
				if err != nil {
					a.log().Warn("history unreadable, using empty history", "path", historyPath, "error", err)
				}
				hist = records
			}
			return a.runPrint(cmd, prompt.Kind(args[0]), hist)
		},
	}
	cmd.Flags().StringVar(&historyPath, "history", os.Getenv("XONSH_HISTORY_FILE"), "xonsh JSON history 파일. xonsh가 버퍼링 후 기록하므로 마지막 명령이 아직 없을 수 있다. 정확한 값은 --status/--execution-time으로 전달")
	cmd.Flags().IntVar(&status, "status", 0, "직전 명령 종료 코드 (history 대신 사용)")
	cmd.Flags().IntVar(&executionTime, "execution-time", 0, "직전 명령 실행 시간 ms (history 대신 사용)")
	return cmd
}

func (a *App) runPrint(cmd *cobra.Command, kind prompt.Kind, hist history.LatestCommandProvider) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}
	variant, err := prompt.ParseVariant(cfg.Variant)
	if err != nil {
		return fmt.Errorf("cli.print: %w: %w", ErrConfig, err)
	}

	hook := &prompt.Hook{
		Executable: cfg.Executable,
		Session: session.Resume(
			os.Getenv(host.EnvSessionID),
			cfg.ThemePath(),
			cfg.Shell,
			os.Getenv(host.EnvXonshVersion),
		),
		Variant:   variant,
		History:   hist,
		Commander: a.Commander,
		Logger:    a.log(),
	}

	text, err := hook.Render(cmd.Context(), kind)
	if errors.Is(err, prompt.ErrRendererMissing) {
		return err
	}
	if err != nil {
		a.log().Debug("renderer exited with error", "kind", kind, "error", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

package cli

import (
	"fmt"
	"os"

	"github.com/hbjs97/poshhook/internal/setup"
	"github.com/spf13/cobra"
)

func (a *App) newSetupCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "poshhook 초기 설정을 시작한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			if force {
				if err := os.Remove(a.CfgPath); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("cli.setup: 기존 설정 삭제 실패: %w", err)
				}
			}
			r := &setup.Runner{
				CfgPath:    a.CfgPath,
				Commander:  a.Commander,
				FormRunner: a.FormRunner,
				Binary:     selfBinary(),
				Out:        cmd.OutOrStdout(),
			}
			return r.Run(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "기존 설정 파일을 지우고 새로 생성")
	return cmd
}

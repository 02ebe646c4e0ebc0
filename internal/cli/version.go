package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version은 빌드 시 -ldflags "-X github.com/hbjs97/poshhook/internal/cli.Version=..."로 주입된다.
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "버전을 출력한다",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}

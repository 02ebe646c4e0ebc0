package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/poshhook/internal/cmdexec"
	"github.com/hbjs97/poshhook/internal/logger"
	"github.com/hbjs97/poshhook/internal/setup"
	"github.com/spf13/cobra"
)

// App은 CLI 명령들이 공유하는 의존성이다.
type App struct {
	Commander  cmdexec.Commander
	FormRunner setup.FormRunner
	Logger     *logger.Logger
	CfgPath    string
	Verbose    bool
}

// NewApp은 실제 실행 환경용 App을 만든다.
func NewApp() *App {
	return &App{
		Commander:  &cmdexec.RealCommander{},
		FormRunner: &setup.HuhFormRunner{},
		CfgPath:    filepath.Join(homeDir(), ".config", "poshhook", "config.toml"),
	}
}

// NewRootCmd는 poshhook CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "poshhook",
		Short:         "셸 프롬프트를 oh-my-posh 렌더러에 연결한다",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.Logger != nil {
				return nil
			}
			l, err := logger.New(a.Verbose)
			if err != nil {
				return fmt.Errorf("cli: logger 초기화 실패: %w", err)
			}
			a.Logger = l
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")
	cmd.PersistentFlags().BoolVar(&a.Verbose, "verbose", false, "상세 출력")

	cmd.AddCommand(
		a.newInitCmd(),
		a.newPrintCmd(),
		a.newDoctorCmd(),
		a.newSetupCmd(),
		newVersionCmd(),
	)
	return cmd
}

func (a *App) log() *logger.Logger {
	if a.Logger == nil {
		return logger.Nop()
	}
	return a.Logger
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}

package setup

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hbjs97/poshhook/internal/config"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunConfigForm은 렌더러/테마/variant/업그레이드 설정 폼을 실행한다.
func (h *HuhFormRunner) RunConfigForm(defaults Input) (*Input, error) {
	input := defaults

	executableValidate := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("렌더러 실행 파일을 입력하세요")
		}
		if strings.ContainsAny(s, "\n\r") {
			return fmt.Errorf("줄바꿈은 사용할 수 없습니다")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("렌더러 실행 파일").
				Description("PATH의 이름 또는 절대 경로 (예: oh-my-posh)").
				Value(&input.Executable).
				Validate(executableValidate),
			huh.NewInput().Title("테마 파일").
				Description("비워두면 렌더러 기본 테마를 사용합니다").
				Value(&input.Theme),
			huh.NewSelect[string]().
				Title("렌더러 플래그 형식").
				Options(
					huh.NewOption("current (--status, --shell-version)", config.VariantCurrent),
					huh.NewOption("legacy (--error)", config.VariantLegacy),
				).
				Value(&input.Variant),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("셸 시작 시 업그레이드 안내를 표시할까요?").Value(&input.UpgradeNotice),
			huh.NewConfirm().Title("셸 시작 시 자동으로 업그레이드할까요?").Value(&input.AutoUpgrade),
		),
	)
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("setup.RunConfigForm: %w", err)
	}

	input.Executable = strings.TrimSpace(input.Executable)
	input.Theme = strings.TrimSpace(input.Theme)
	return &input, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return confirm, nil
}

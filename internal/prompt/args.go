package prompt

import (
	"fmt"
	"strconv"

	"github.com/hbjs97/poshhook/internal/session"
)

// Variant는 렌더러 플래그 형식이다.
type Variant string

const (
	// VariantCurrent는 --status와 --shell-version을 사용한다.
	VariantCurrent Variant = "current"
	// VariantLegacy는 --error를 사용하고 --shell-version을 보내지 않는다.
	VariantLegacy Variant = "legacy"
)

// ParseVariant는 문자열을 Variant로 변환한다. 빈 문자열은 VariantCurrent다.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case "", VariantCurrent:
		return VariantCurrent, nil
	case VariantLegacy:
		return VariantLegacy, nil
	default:
		return "", fmt.Errorf("prompt.ParseVariant: 알 수 없는 variant: %q", s)
	}
}

// Kind는 렌더링할 프롬프트 종류다.
type Kind string

const (
	Primary Kind = "primary"
	Right   Kind = "right"
)

// StatusFlag는 variant에 맞는 종료 코드 플래그 이름을 반환한다.
func (v Variant) StatusFlag() string {
	if v == VariantLegacy {
		return "--error"
	}
	return "--status"
}

// SendsShellVersion은 --shell-version 전달 여부다.
func (v Variant) SendsShellVersion() bool {
	return v != VariantLegacy
}

// Args는 렌더러 print 명령의 인자 목록을 만든다.
func Args(kind Kind, sc session.Context, v Variant, status, durationMs int) []string {
	args := []string{
		"print", string(kind),
		"--config=" + sc.ThemePath,
		"--shell=" + sc.Shell,
		v.StatusFlag() + "=" + strconv.Itoa(status),
		"--execution-time=" + strconv.Itoa(durationMs),
	}
	if v.SendsShellVersion() {
		args = append(args, "--shell-version="+sc.ShellVersion)
	}
	return args
}

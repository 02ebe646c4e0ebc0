package cli

import (
	"errors"
)

// ExitCode는 poshhook의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 5
	// ExitMissingDependency는 렌더러 실행 파일이 없음을 뜻한다.
	ExitMissingDependency ExitCode = 6
	// ExitUnsupportedShell는 지원하지 않는 셸이다.
	ExitUnsupportedShell ExitCode = 7
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrRendererMissing):
		return ExitMissingDependency
	case errors.Is(err, ErrUnsupportedShell):
		return ExitUnsupportedShell
	default:
		return ExitGeneral
	}
}

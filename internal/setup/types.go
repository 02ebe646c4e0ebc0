package setup

// Input은 setup 폼에서 받는 값이다.
type Input struct {
	Executable    string
	Theme         string
	Variant       string
	UpgradeNotice bool
	AutoUpgrade   bool
}

// FormRunner는 TUI 폼 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunConfigForm은 설정 입력 폼을 실행한다. defaults의 값이 초기값으로 표시된다.
	RunConfigForm(defaults Input) (*Input, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}

// Package host models the parts of an interactive shell that prompt hooks touch:
// a named hook table, an environment-variable surface, and terminal output.
package host

import (
	"fmt"
	"io"
	"sync"
)

// 훅 이름.
const (
	HookPrompt      = "PROMPT"
	HookRightPrompt = "RIGHT_PROMPT"
)

// 셸 환경변수 이름.
const (
	EnvPowerlineCommand = "POWERLINE_COMMAND"
	EnvTheme            = "POSH_THEME"
	EnvSessionID        = "POSH_PID"
	EnvShellVersion     = "POSH_SHELL_VERSION"
	EnvXonshVersion     = "XONSH_VERSION"
)

// PromptFunc는 프롬프트가 그려질 때마다 호출된다.
type PromptFunc func() string

// Shell은 프롬프트 훅이 의존하는 호스트 셸 표면이다.
type Shell interface {
	SetHook(name string, fn PromptFunc)
	Setenv(key, value string)
	Getenv(key string) string
	Print(msg string)
}

// Memory는 메모리 기반 Shell 구현이다. doctor의 렌더링 점검과 테스트에서 쓴다.
type Memory struct {
	mu    sync.Mutex
	hooks map[string]PromptFunc
	env   map[string]string
	out   io.Writer
}

var _ Shell = (*Memory)(nil)

// NewMemory는 주어진 환경변수로 초기화된 Memory를 만든다. out이 nil이면 출력은 버려진다.
func NewMemory(env map[string]string, out io.Writer) *Memory {
	m := &Memory{
		hooks: make(map[string]PromptFunc),
		env:   make(map[string]string, len(env)),
		out:   out,
	}
	for k, v := range env {
		m.env[k] = v
	}
	if m.out == nil {
		m.out = io.Discard
	}
	return m
}

// SetHook은 이름에 훅을 등록한다. 같은 이름이 있으면 교체한다.
func (m *Memory) SetHook(name string, fn PromptFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks[name] = fn
}

// Setenv는 셸 변수를 설정한다.
func (m *Memory) Setenv(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.env[key] = value
}

// Getenv는 셸 변수를 조회한다. 없으면 빈 문자열이다.
func (m *Memory) Getenv(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.env[key]
}

// Print는 터미널에 한 줄을 출력한다.
func (m *Memory) Print(msg string) {
	fmt.Fprintln(m.out, msg)
}

// Render는 등록된 훅을 호출해 프롬프트 문자열을 만든다.
func (m *Memory) Render(name string) (string, bool) {
	m.mu.Lock()
	fn, ok := m.hooks[name]
	m.mu.Unlock()
	if !ok || fn == nil {
		return "", false
	}
	return fn(), true
}

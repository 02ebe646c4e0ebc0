// Package session holds the per-shell-session values shared by every prompt render.
package session

import "github.com/google/uuid"

// Xonsh는 렌더러에 전달되는 셸 이름이다.
const Xonsh = "xonsh"

// Context는 셸 시작 시 한 번 만들어지고 이후 읽기 전용으로 쓰이는 세션 정보다.
type Context struct {
	ThemePath    string
	Shell        string
	SessionID    string
	ShellVersion string
}

// New는 새 세션 토큰을 발급해 Context를 만든다.
func New(themePath, shell, shellVersion string) Context {
	if shell == "" {
		shell = Xonsh
	}
	return Context{
		ThemePath:    themePath,
		Shell:        shell,
		SessionID:    uuid.NewString(),
		ShellVersion: shellVersion,
	}
}

// Resume은 이미 발급된 세션 토큰을 재사용한다. 토큰이 유효한 UUID가 아니면 새로 발급한다.
func Resume(sessionID, themePath, shell, shellVersion string) Context {
	c := New(themePath, shell, shellVersion)
	if _, err := uuid.Parse(sessionID); err == nil {
		c.SessionID = sessionID
	}
	return c
}

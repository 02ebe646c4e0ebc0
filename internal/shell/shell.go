package shell

import (
	"errors"
	"fmt"
	"strings"
)

// Xonsh는 현재 지원하는 유일한 셸이다.
const Xonsh = "xonsh"

// ErrUnsupportedShell은 init 스크립트가 없는 셸을 요청했을 때의 sentinel error다.
var ErrUnsupportedShell = errors.New("unsupported shell")

// ScriptOptions는 init 스크립트에 박히는 값이다.
type ScriptOptions struct {
	Executable     string
	Config         string
	SessionID      string
	Legacy         bool
	UpgradeNotice  bool
	UpgradeMessage string
	AutoUpgrade    bool
}

const xonshInit = `$POWERLINE_COMMAND = ::OMP::
$POSH_THEME = ::CONFIG::
$POSH_PID = ::SESSION_ID::
::SHELL_VERSION_LINE::
def get_command_context():
    last_cmd = __xonsh__.history[-1] if __xonsh__.history else None
    status = last_cmd.rtn if last_cmd else 0
    duration = round((last_cmd.ts[1] - last_cmd.ts[0]) * 1000) if last_cmd else 0
    return status, duration

def posh_primary():
    status, duration = get_command_context()
    return $(@($POWERLINE_COMMAND) print primary --config=@($POSH_THEME) --shell=::SHELL:: ::STATUS_FLAG::=@(status) --execution-time=@(duration)::SHELL_VERSION_FLAG::)

def posh_right():
    status, duration = get_command_context()
    return $(@($POWERLINE_COMMAND) print right --config=@($POSH_THEME) --shell=::SHELL:: ::STATUS_FLAG::=@(status) --execution-time=@(duration)::SHELL_VERSION_FLAG::)

$PROMPT = posh_primary
$RIGHT_PROMPT = posh_right
`

// Script는 셸 init 스크립트를 생성한다.
func Script(shellType string, opts ScriptOptions) (string, error) {
	if shellType != Xonsh {
		return "", fmt.Errorf("shell.Script: %w: %s", ErrUnsupportedShell, shellType)
	}

	statusFlag := "--status"
	versionLine := "$POSH_SHELL_VERSION = $XONSH_VERSION\n"
	versionFlag := " --shell-version=@($POSH_SHELL_VERSION)"
	if opts.Legacy {
		statusFlag = "--error"
		versionLine = ""
		versionFlag = ""
	}

	script := strings.NewReplacer(
		"::OMP::", quotePythonStr(opts.Executable),
		"::CONFIG::", quotePythonStr(opts.Config),
		"::SESSION_ID::", quotePythonStr(opts.SessionID),
		"::SHELL::", shellType,
		"::STATUS_FLAG::", statusFlag,
		"::SHELL_VERSION_LINE::", versionLine,
		"::SHELL_VERSION_FLAG::", versionFlag,
	).Replace(xonshInit)

	if opts.Legacy {
		return script, nil
	}

	var b strings.Builder
	b.WriteString(script)
	if opts.UpgradeNotice && opts.UpgradeMessage != "" {
		fmt.Fprintf(&b, "\nprint(%s)\n", quotePythonStr(opts.UpgradeMessage))
	}
	if opts.AutoUpgrade {
		b.WriteString("\n@($POWERLINE_COMMAND) upgrade &\n")
	}
	return b.String(), nil
}

// HookSnippet는 rc 파일에 추가할 init 로드 스니펫을 반환한다.
func HookSnippet(shellType, binary string) string {
	switch shellType {
	case Xonsh:
		return fmt.Sprintf(`# poshhook shell integration (xonsh)
execx($(%s init xonsh))
`, binary)
	default:
		return ""
	}
}

// quotePythonStr은 문자열을 Python 작은따옴표 리터럴로 만든다.
func quotePythonStr(str string) string {
	if str == "" {
		return "''"
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
	return "'" + r.Replace(str) + "'"
}

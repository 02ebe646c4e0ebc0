package prompt

import (
	"context"

	"github.com/hbjs97/poshhook/internal/cmdexec"
	"github.com/hbjs97/poshhook/internal/history"
	"github.com/hbjs97/poshhook/internal/host"
	"github.com/hbjs97/poshhook/internal/logger"
	"github.com/hbjs97/poshhook/internal/session"
)

// Options는 셸 시작 시 한 번 적용되는 설정이다.
type Options struct {
	Executable     string
	ThemePath      string
	Shell          string
	Variant        Variant
	UpgradeNotice  bool
	UpgradeMessage string
	AutoUpgrade    bool
}

// Install은 세션 토큰을 발급하고 셸 변수와 PROMPT/RIGHT_PROMPT 훅을 등록한다.
// current variant에서는 업그레이드 안내 출력과 자동 업그레이드 실행도 여기서 한 번 수행한다.
func Install(ctx context.Context, sh host.Shell, opts Options, hist history.LatestCommandProvider, cmd cmdexec.Commander, log *logger.Logger) *Hook {
	if log == nil {
		log = logger.Nop()
	}
	if opts.Variant == "" {
		opts.Variant = VariantCurrent
	}

	sc := session.New(opts.ThemePath, opts.Shell, sh.Getenv(host.EnvXonshVersion))
	log = log.With("session", sc.SessionID)
	hook := &Hook{
		Executable: opts.Executable,
		Session:    sc,
		Variant:    opts.Variant,
		History:    hist,
		Commander:  cmd,
		Logger:     log,
	}

	for k, v := range hook.Env() {
		sh.Setenv(k, v)
	}
	sh.SetHook(host.HookPrompt, func() string { return hook.Primary(ctx) })
	sh.SetHook(host.HookRightPrompt, func() string { return hook.Right(ctx) })
	log.Debug("prompt hooks installed", "variant", opts.Variant)

	if opts.Variant != VariantCurrent {
		return hook
	}
	if opts.UpgradeNotice && opts.UpgradeMessage != "" {
		sh.Print(opts.UpgradeMessage)
	}
	if opts.AutoUpgrade {
		if err := cmd.Start(opts.Executable, "upgrade"); err != nil {
			log.Warn("auto upgrade failed to start", "executable", opts.Executable, "error", err)
		}
	}
	return hook
}

// Package logger wraps a zap sugared logger that always writes to stderr,
// keeping stdout free for prompt text and init scripts.
package logger

import (
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger는 key/value 형태의 구조화 로그를 남긴다.
type Logger struct {
	SugaredLogger *zap.SugaredLogger
}

// New는 stderr로 출력하는 Logger를 만든다. verbose면 debug 레벨까지 출력한다.
func New(verbose bool) (*Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	if isatty.IsTerminal(os.Stderr.Fd()) {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: zapLogger.Sugar()}, nil
}

// Nop은 아무것도 출력하지 않는 Logger다.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Sync는 버퍼된 로그를 내보낸다.
func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

// Debug는 debug 레벨 로그를 남긴다.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Debugw(msg, keysAndValues...)
}

// Warn은 warn 레벨 로그를 남긴다.
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Warnw(msg, keysAndValues...)
}

// With는 key/value가 항상 붙는 하위 Logger를 만든다.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(keysAndValues...)}
}

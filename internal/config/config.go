package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("config error")

// 렌더러 호출 형식.
const (
	// VariantCurrent는 --status와 --shell-version을 전달한다.
	VariantCurrent = "current"
	// VariantLegacy는 --error를 전달하고 --shell-version은 생략한다.
	VariantLegacy = "legacy"
)

const (
	defaultExecutable = "oh-my-posh"
	defaultShell      = "xonsh"
	// envTheme가 설정되어 있으면 theme 값을 덮어쓴다.
	envTheme = "POSH_THEME"
)

// DefaultUpgradeMessage는 업그레이드 안내 기본 문구다.
const DefaultUpgradeMessage = `A new release of Oh My Posh is available.
To upgrade, run: 'oh-my-posh upgrade'

To enable automated upgrades, run: 'oh-my-posh enable upgrade'.`

// Config는 poshhook 설정 파일의 최상위 구조체다.
type Config struct {
	Version    int     `toml:"version"`
	Executable string  `toml:"executable"`
	Theme      string  `toml:"theme"`
	Shell      string  `toml:"shell"`
	Variant    string  `toml:"variant"`
	Upgrade    Upgrade `toml:"upgrade"`
}

// Upgrade는 셸 시작 시 업그레이드 안내와 자동 업그레이드 설정이다.
type Upgrade struct {
	Notice  bool   `toml:"notice"`
	Auto    bool   `toml:"auto"`
	Message string `toml:"message"`
}

// Default는 설정 파일이 없을 때 사용하는 설정을 반환한다.
func Default() *Config {
	cfg := &Config{Version: 1}
	cfg.applyDefaults()
	return cfg
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본 설정을 반환한다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config.Load: %w: %w", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 Config를 TOML로 저장한다 (0600 권한).
func Save(path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// ThemePath는 테마 경로를 반환한다. POSH_THEME 환경변수가 우선하며 ~는 홈 디렉토리로 확장한다.
func (c *Config) ThemePath() string {
	theme := c.Theme
	if env := os.Getenv(envTheme); env != "" {
		theme = env
	}
	return expandHome(theme)
}

// IsLegacy는 구 버전 렌더러 플래그 형식을 쓰는지 반환한다.
func (c *Config) IsLegacy() bool {
	return c.Variant == VariantLegacy
}

// UpgradeMessage는 출력할 업그레이드 안내 문구를 반환한다.
func (c *Config) UpgradeMessage() string {
	if c.Upgrade.Message == "" {
		return DefaultUpgradeMessage
	}
	return c.Upgrade.Message
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Executable == "" {
		c.Executable = defaultExecutable
	}
	if c.Shell == "" {
		c.Shell = defaultShell
	}
	if c.Variant == "" {
		c.Variant = VariantCurrent
	}
}

func (c *Config) validate() error {
	switch c.Variant {
	case VariantCurrent, VariantLegacy:
	default:
		return fmt.Errorf("config.Load: %w: variant는 %q 또는 %q이어야 합니다: %q", ErrConfig, VariantCurrent, VariantLegacy, c.Variant)
	}
	if strings.ContainsAny(c.Executable, "\n\r") {
		return fmt.Errorf("config.Load: %w: executable에 줄바꿈을 넣을 수 없습니다", ErrConfig)
	}
	if c.Shell != defaultShell {
		return fmt.Errorf("config.Load: %w: 지원하지 않는 셸: %s", ErrConfig, c.Shell)
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

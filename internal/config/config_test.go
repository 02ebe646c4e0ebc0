package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/poshhook/internal/config"
	"github.com/hbjs97/poshhook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidTOML(t *testing.T) {
	content := `version = 1
executable = "/usr/local/bin/oh-my-posh"
theme = "/home/test/.poshthemes/atomic.omp.json"
variant = "legacy"

[upgrade]
notice = true
auto = false
message = "upgrade me"
`
	path := testutil.TempConfigFile(t, content)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "/usr/local/bin/oh-my-posh", cfg.Executable)
	assert.Equal(t, "/home/test/.poshthemes/atomic.omp.json", cfg.Theme)
	assert.Equal(t, "xonsh", cfg.Shell)
	assert.True(t, cfg.IsLegacy())
	assert.True(t, cfg.Upgrade.Notice)
	assert.False(t, cfg.Upgrade.Auto)
	assert.Equal(t, "upgrade me", cfg.UpgradeMessage())
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := testutil.TempConfigFile(t, `theme = "/t.json"`)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "oh-my-posh", cfg.Executable)
	assert.Equal(t, config.VariantCurrent, cfg.Variant)
	assert.False(t, cfg.IsLegacy())
	assert.Equal(t, config.DefaultUpgradeMessage, cfg.UpgradeMessage())
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := testutil.TempConfigFile(t, `theme = `)
	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadConfig_InvalidVariant(t *testing.T) {
	path := testutil.TempConfigFile(t, `variant = "v3"`)
	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfig)
	assert.Contains(t, err.Error(), "variant")
}

func TestLoadConfig_UnsupportedShell(t *testing.T) {
	path := testutil.TempConfigFile(t, `shell = "tcsh"`)
	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestThemePath_EnvOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Theme = "/from/config.json"

	t.Setenv("POSH_THEME", "")
	assert.Equal(t, "/from/config.json", cfg.ThemePath())

	t.Setenv("POSH_THEME", "/from/env.json")
	assert.Equal(t, "/from/env.json", cfg.ThemePath())
}

func TestThemePath_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("POSH_THEME", "")

	cfg := config.Default()
	cfg.Theme = "~/.poshthemes/atomic.omp.json"
	assert.Equal(t, filepath.Join(home, ".poshthemes", "atomic.omp.json"), cfg.ThemePath())
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "config.toml")

	cfg := config.Default()
	cfg.Theme = "/themes/paradox.omp.json"
	cfg.Variant = config.VariantLegacy
	cfg.Upgrade = config.Upgrade{Notice: true, Auto: true}

	require.NoError(t, config.Save(path, cfg))

	// 파일 권한 0600 확인
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

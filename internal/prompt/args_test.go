package prompt_test

import (
	"testing"

	"github.com/hbjs97/poshhook/internal/prompt"
	"github.com/hbjs97/poshhook/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() session.Context {
	return session.Context{
		ThemePath:    "/home/user/.poshthemes/atomic.omp.json",
		Shell:        session.Xonsh,
		SessionID:    "5f0c8e1e-2c7a-4a39-9d6a-7d3c0b1f3c11",
		ShellVersion: "0.14.0",
	}
}

func TestArgs_Current(t *testing.T) {
	args := prompt.Args(prompt.Primary, testSession(), prompt.VariantCurrent, 1, 1250)
	assert.Equal(t, []string{
		"print", "primary",
		"--config=/home/user/.poshthemes/atomic.omp.json",
		"--shell=xonsh",
		"--status=1",
		"--execution-time=1250",
		"--shell-version=0.14.0",
	}, args)
}

func TestArgs_Legacy(t *testing.T) {
	args := prompt.Args(prompt.Right, testSession(), prompt.VariantLegacy, 2, 0)
	assert.Equal(t, []string{
		"print", "right",
		"--config=/home/user/.poshthemes/atomic.omp.json",
		"--shell=xonsh",
		"--error=2",
		"--execution-time=0",
	}, args)
}

func TestArgs_PrimaryAndRightDifferOnlyInSubcommand(t *testing.T) {
	for _, v := range []prompt.Variant{prompt.VariantCurrent, prompt.VariantLegacy} {
		primary := prompt.Args(prompt.Primary, testSession(), v, 0, 10)
		right := prompt.Args(prompt.Right, testSession(), v, 0, 10)

		require.Len(t, right, len(primary))
		assert.Equal(t, "primary", primary[1])
		assert.Equal(t, "right", right[1])
		assert.Equal(t, primary[2:], right[2:])
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    prompt.Variant
		wantErr bool
	}{
		{in: "", want: prompt.VariantCurrent},
		{in: "current", want: prompt.VariantCurrent},
		{in: "legacy", want: prompt.VariantLegacy},
		{in: "v2", wantErr: true},
	}
	for _, tt := range tests {
		got, err := prompt.ParseVariant(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/poshhook/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const xonshHistory = `{
  "locs": [69, 3140, 3208, 3500],
  "index": {},
  "data": {
    "cmds": [
      {"inp": "ls\n", "rtn": 0, "ts": [1700000000.0, 1700000000.1]},
      {"inp": "false\n", "rtn": 1, "ts": [1700000001.0, 1700000003.5]}
    ],
    "sessionid": "d4b8c3a0-0000-4000-8000-000000000000",
    "ts": [1700000000.0, null]
  }
}`

func TestLoadXonsh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xonsh-history.json")
	require.NoError(t, os.WriteFile(path, []byte(xonshHistory), 0600))

	records, err := history.LoadXonsh(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	status, duration := history.CommandContext(records)
	assert.Equal(t, 1, status)
	assert.Equal(t, 2500, duration)
}

func TestLoadXonsh_MissingFile(t *testing.T) {
	records, err := history.LoadXonsh(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadXonsh_EmptyPath(t *testing.T) {
	records, err := history.LoadXonsh("")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadXonsh_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := history.LoadXonsh(path)
	assert.Error(t, err)
}

func TestLoadXonsh_MissingTimestamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data":{"cmds":[{"inp":"x","rtn":3}]}}`), 0600))

	records, err := history.LoadXonsh(path)
	require.NoError(t, err)

	status, duration := history.CommandContext(records)
	assert.Equal(t, 3, status)
	assert.Equal(t, 0, duration)
}

func TestLoadXonsh_NullEndTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "running.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"data":{"cmds":[{"inp":"sleep 10","rtn":0,"ts":[1700000000.0,null]}]}}`), 0600))

	records, err := history.LoadXonsh(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	_, duration := history.CommandContext(records)
	assert.Equal(t, 0, duration)
}

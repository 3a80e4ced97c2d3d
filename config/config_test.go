package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"gnsscore/config"
)

func writeRoster(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func Test_Load_ParsesChannelEntries(t *testing.T) {
	path := writeRoster(t, `
channels:
  - channel_id: 1
    expect_acquisition: true
    expect_tracking: true
    expect_queue: true
  - channel_id: 2
    expect_acquisition: true
    expect_tracking: false
    expect_queue: false
`)

	r, err := config.Load(path)
	assert.NoError(t, err)
	assert.Len(t, r.Channels, 2)
	assert.Equal(t, uint(1), r.Channels[0].ChannelID)
	assert.True(t, r.Channels[0].ExpectTracking)
	assert.False(t, r.Channels[1].ExpectTracking)
}

func Test_Load_RejectsDuplicateChannelID(t *testing.T) {
	path := writeRoster(t, `
channels:
  - channel_id: 9
    expect_acquisition: true
  - channel_id: 9
    expect_acquisition: false
`)

	_, err := config.Load(path)
	assert.Error(t, err)
}

func Test_Load_MissingFile_ReturnsError(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

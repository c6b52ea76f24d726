package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withArgs swaps os.Args for the duration of the test.
func withArgs(t *testing.T, args ...string) {
	t.Helper()
	saved := os.Args
	os.Args = append([]string{"campustrade"}, args...)
	t.Cleanup(func() { os.Args = saved })
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_NoFlagIsNoop(t *testing.T) {
	withArgs(t)

	var c Config
	c.LoadDefaults()
	parseJSON(&c)

	assert.Equal(t, "http://localhost:5000/api", c.APIBaseURL)
}

func TestParseJSON_OverlaysValues(t *testing.T) {
	path := writeConfigFile(t, `{
		"api_base_url": "https://market.campus.example/api",
		"request_timeout_sec": 3
	}`)
	withArgs(t, "-c", path)

	var c Config
	c.LoadDefaults()
	parseJSON(&c)

	assert.Equal(t, "https://market.campus.example/api", c.APIBaseURL)
	assert.Equal(t, 3*time.Second, c.RequestTimeout)
	// absent fields keep their defaults
	assert.Equal(t, "campustrade.db", c.DatabasePath)
}

func TestParseJSON_PanicsOnBrokenFile(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	withArgs(t, "-config", path)

	var c Config
	c.LoadDefaults()
	assert.Panics(t, func() { parseJSON(&c) })
}

func TestParseFlags_OverridesJSONAndDefaults(t *testing.T) {
	withArgs(t, "-a", "http://flag.example/api", "-t", "7")

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "http://flag.example/api", c.APIBaseURL)
	assert.Equal(t, 7*time.Second, c.RequestTimeout)
}

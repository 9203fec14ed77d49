package twitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := ClientConfig{APIKey: "k"}
	cfg.defaults()

	assert.Equal(t, defaultTimeout, cfg.Timeout)
	assert.Equal(t, defaultBaseURL, cfg.BaseURL)
	assert.Equal(t, defaultMaxConcurrent, cfg.MaxConcurrent)
}

func TestConfigDefaultsKeepExplicitValues(t *testing.T) {
	cfg := ClientConfig{
		APIKey:        "k",
		Timeout:       5 * time.Second,
		BaseURL:       "https://example.test/",
		MaxConcurrent: 7,
	}
	cfg.defaults()

	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "https://example.test/", cfg.BaseURL)
	assert.Equal(t, 7, cfg.MaxConcurrent)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TWITTER_API_KEY", "env-key")
	t.Setenv("TWITTER_TIMEOUT", "45s")
	t.Setenv("TWITTER_VERBOSE", "true")
	t.Setenv("TWITTER_MAX_CONCURRENT", "9")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 9, cfg.MaxConcurrent)
}

func TestConfigFromEnvRejectsBadDuration(t *testing.T) {
	t.Setenv("TWITTER_API_KEY", "env-key")
	t.Setenv("TWITTER_TIMEOUT", "soon")

	_, err := ConfigFromEnv()
	require.Error(t, err)
}

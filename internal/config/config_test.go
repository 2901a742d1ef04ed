package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MATCH_PORT", "")
	t.Setenv("MATCH_JSON_LOGS", "")
	t.Setenv("MATCH_DEBUG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.False(t, cfg.JSONLogs)
	assert.False(t, cfg.Debug)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("MATCH_PORT", "9090")
	t.Setenv("MATCH_JSON_LOGS", "true")
	t.Setenv("MATCH_DEBUG", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.JSONLogs)
	assert.True(t, cfg.Debug)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("MATCH_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_PortRange(t *testing.T) {
	assert.Error(t, (&Config{Port: 0}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.NoError(t, (&Config{Port: 8080}).Validate())
}

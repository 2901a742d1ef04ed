package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Console(t *testing.T) {
	log, err := New(false, false)
	require.NoError(t, err)
	assert.NotNil(t, log)
	assert.False(t, log.Core().Enabled(-1)) // debug disabled
}

func TestNew_JSONDebug(t *testing.T) {
	log, err := New(true, true)
	require.NoError(t, err)
	assert.NotNil(t, log)
	assert.True(t, log.Core().Enabled(-1)) // debug enabled
}

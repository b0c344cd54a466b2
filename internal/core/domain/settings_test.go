package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/makerun/internal/core/domain"
)

func TestParseLogFormat(t *testing.T) {
	f, err := domain.ParseLogFormat("json")
	require.NoError(t, err)
	assert.Equal(t, domain.LogFormatJSON, f)

	_, err = domain.ParseLogFormat("xml")
	require.ErrorContains(t, err, domain.ErrInvalidLogFormat.Error())
}

func TestParseLogLevel(t *testing.T) {
	for _, s := range []string{"debug", "info", "warn", "error"} {
		l, err := domain.ParseLogLevel(s)
		require.NoError(t, err)
		assert.Equal(t, domain.LogLevel(s), l)
	}

	_, err := domain.ParseLogLevel("trace")
	require.ErrorContains(t, err, domain.ErrInvalidLogLevel.Error())
}

func TestDefaultSettings(t *testing.T) {
	s := domain.DefaultSettings()

	assert.Equal(t, domain.LogFormatPretty, s.LogFormat)
	assert.Equal(t, domain.LogLevelInfo, s.LogLevel)
	assert.False(t, s.PropagateExit)
	assert.True(t, s.History)
	assert.Equal(t, ".makerun", s.StateDir)
	assert.Empty(t, s.Source)
}

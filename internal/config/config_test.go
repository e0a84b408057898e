package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetcalc/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"FLEETCALC_PORT", "FLEETCALC_WORKERS", "FLEETCALC_LOG_LEVEL", "FLEETCALC_LOG_DEV", "FLEETCALC_REPORT_DIR", "FLEETCALC_READ_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 4, cfg.Analysis.Workers)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Development)
	assert.Equal(t, "./reports", cfg.Report.Dir)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FLEETCALC_PORT", "9090")
	t.Setenv("FLEETCALC_WORKERS", "8")
	t.Setenv("FLEETCALC_LOG_LEVEL", "debug")
	t.Setenv("FLEETCALC_LOG_DEV", "true")
	t.Setenv("FLEETCALC_READ_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 8, cfg.Analysis.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"port", "FLEETCALC_PORT", "http"},
		{"workers", "FLEETCALC_WORKERS", "0"},
		{"log level", "FLEETCALC_LOG_LEVEL", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}

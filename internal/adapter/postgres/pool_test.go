package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/manuver-backend/internal/config"
)

func TestPoolConfig(t *testing.T) {
	t.Parallel()

	cfg, err := poolConfig(config.DatabaseConfig{
		DSN:               "postgres://u:p@localhost:5432/riwayat",
		MaxConns:          12,
		MinConns:          3,
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   10 * time.Minute,
		HealthCheckPeriod: 30 * time.Second,
		ApplicationName:   "manuver-test",
		StatementTimeout:  1500 * time.Millisecond,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(12), cfg.MaxConns)
	assert.Equal(t, int32(3), cfg.MinConns)
	assert.Equal(t, time.Hour, cfg.MaxConnLifetime)
	assert.Equal(t, 10*time.Minute, cfg.MaxConnIdleTime)
	assert.Equal(t, 30*time.Second, cfg.HealthCheckPeriod)
	assert.Equal(t, "manuver-test", cfg.ConnConfig.RuntimeParams["application_name"])
	assert.Equal(t, "1500", cfg.ConnConfig.RuntimeParams["statement_timeout"])
}

func TestPoolConfig_ZeroKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := poolConfig(config.DatabaseConfig{DSN: "postgres://u:p@localhost:5432/riwayat?pool_max_conns=9"})
	require.NoError(t, err)

	assert.Equal(t, int32(9), cfg.MaxConns)
	_, ok := cfg.ConnConfig.RuntimeParams["statement_timeout"]
	assert.False(t, ok)
}

func TestPoolConfig_BadDSN(t *testing.T) {
	t.Parallel()

	_, err := poolConfig(config.DatabaseConfig{DSN: "://nope"})
	assert.ErrorContains(t, err, "parse database DSN")
}

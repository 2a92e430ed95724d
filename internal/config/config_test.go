package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadEnv_Defaults(t *testing.T) {
	unsetEnv(t, "PORT", "RECORD_STORE", "AWS_REGION", "BATCH_ID_NODE")
	cfg := LoadEnv()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, RecordStoreMemory, cfg.RecordStore)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, int64(1), cfg.BatchNodeID)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("RECORD_STORE", "Postgres")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "25")
	t.Setenv("ATTOM_REQUESTS_PER_SEC", "2.5")
	t.Setenv("LOGGER_DISABLE_CALLER", "true")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := LoadEnv()

	assert.Equal(t, RecordStorePostgres, cfg.RecordStore)
	assert.Equal(t, 25, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, 2.5, cfg.Attom.RequestsPerSec)
	assert.True(t, cfg.Logger.DisableCaller)
	assert.Equal(t, 0, cfg.Redis.DB)
}

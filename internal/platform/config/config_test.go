package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://finance@localhost/finance")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("IDEMPOTENCY_LOCK_TTL", "45s")
	t.Setenv("SNOWFLAKE_WORKER_ID", "12")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://finance@localhost/finance", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 45*time.Second, cfg.IdempotencyLockTTL)
	assert.Equal(t, int64(12), cfg.SnowflakeWorkerID)
	assert.Equal(t, "finance-events", cfg.KafkaTopic)
}

func TestLoadConfigFallsBackOnInvalidValues(t *testing.T) {
	t.Setenv("IDEMPOTENCY_LOCK_TTL", "soon")
	t.Setenv("SNOWFLAKE_WORKER_ID", "5000")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.IdempotencyLockTTL)
	assert.Equal(t, workerIDFromHost(), cfg.SnowflakeWorkerID)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestLoadConfigDerivesWorkerIDFromHostname(t *testing.T) {
	t.Setenv("SNOWFLAKE_WORKER_ID", "")
	host, err := os.Hostname()
	require.NoError(t, err)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, hostWorkerID(host), cfg.SnowflakeWorkerID)
}

func TestHostWorkerID(t *testing.T) {
	a := hostWorkerID("finance-backend-7d9c5-a")
	b := hostWorkerID("finance-backend-7d9c5-b")

	assert.Equal(t, a, hostWorkerID("finance-backend-7d9c5-a"))
	assert.NotEqual(t, a, b, "replicas on different hosts should not share a worker id")
	for _, id := range []int64{a, b, hostWorkerID(""), hostWorkerID("x")} {
		assert.GreaterOrEqual(t, id, int64(0))
		assert.LessOrEqual(t, id, int64(maxWorkerID))
	}
}

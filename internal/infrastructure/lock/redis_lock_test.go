package lock

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopLockerAlwaysAcquires(t *testing.T) {
	release, err := NoopLocker{}.Acquire(context.Background(), "service:1:income")
	require.NoError(t, err)
	require.NotNil(t, release)
	release()
}

func TestRedisLockerReportsUnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer client.Close()

	locker := NewRedisLocker(client, time.Second)
	release, err := locker.Acquire(context.Background(), "payroll:abc")
	assert.Error(t, err)
	assert.Nil(t, release)
}

package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSlotLocker(t *testing.T) {
	mr, client := setupTestRedis(t)
	locker := &SlotLocker{Cache: client, TTL: 5 * time.Second}
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "staff-1", openFriday)
	require.NoError(t, err)
	assert.True(t, mr.Exists("lock:booking:staff-1:"+openFriday))

	_, err = locker.Acquire(ctx, "staff-1", openFriday)
	assert.ErrorIs(t, err, ErrCheckoutInProgress)

	other, err := locker.Acquire(ctx, "staff-2", openFriday)
	require.NoError(t, err)
	other()

	release()
	assert.False(t, mr.Exists("lock:booking:staff-1:"+openFriday))

	release, err = locker.Acquire(ctx, "staff-1", openFriday)
	require.NoError(t, err)
	release()
}

func TestSlotLocker_ReleaseKeepsForeignLock(t *testing.T) {
	mr, client := setupTestRedis(t)
	locker := &SlotLocker{Cache: client, TTL: time.Second}
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "staff-1", openFriday)
	require.NoError(t, err)

	// our lock expires and another checkout takes it
	mr.FastForward(2 * time.Second)
	require.NoError(t, mr.Set("lock:booking:staff-1:"+openFriday, "someone-else"))

	release()
	assert.True(t, mr.Exists("lock:booking:staff-1:"+openFriday))
}

func TestSlotLocker_Nil(t *testing.T) {
	var locker *SlotLocker
	release, err := locker.Acquire(context.Background(), "staff-1", openFriday)
	require.NoError(t, err)
	release()
}

func TestSlotLocker_DefaultTTL(t *testing.T) {
	mr, client := setupTestRedis(t)
	locker := &SlotLocker{Cache: client}

	release, err := locker.Acquire(context.Background(), "staff-1", openFriday)
	require.NoError(t, err)
	defer release()
	assert.Equal(t, DefaultLockTTL, mr.TTL("lock:booking:staff-1:"+openFriday))
}

func TestSlotLocker_ReleaseFailureIsLogged(t *testing.T) {
	_, client := setupTestRedis(t)
	core, logs := observer.New(zapcore.ErrorLevel)
	locker := &SlotLocker{Cache: client, TTL: time.Second, Logger: zap.New(core)}

	release, err := locker.Acquire(context.Background(), "staff-1", openFriday)
	require.NoError(t, err)

	require.NoError(t, client.Close())
	release()

	entries := logs.FilterMessage("Failed to release booking lock").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "lock:booking:staff-1:"+openFriday, entries[0].ContextMap()["key"])
}

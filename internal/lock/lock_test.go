package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_ExclusiveAcrossGoroutines(t *testing.T) {
	l := NewLocal()
	var inside, maxInside atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(context.Background(), "u1/golang", time.Minute)
			if !assert.NoError(t, err) {
				return
			}
			n := inside.Add(1)
			for {
				m := maxInside.Load()
				if n <= m || maxInside.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
			release()
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxInside.Load())
}

func TestLocal_DistinctKeysDoNotBlock(t *testing.T) {
	l := NewLocal()
	r1, err := l.Acquire(context.Background(), "a", time.Minute)
	require.NoError(t, err)
	defer r1()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	r2, err := l.Acquire(ctx, "b", time.Minute)
	require.NoError(t, err)
	r2()
}

func TestLocal_ContextEndsWhileWaiting(t *testing.T) {
	l := NewLocal()
	release, err := l.Acquire(context.Background(), "k", time.Minute)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx, "k", time.Minute)
	assert.ErrorIs(t, err, ErrNotAcquired)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLocal_TTLFreesLeakedKey(t *testing.T) {
	l := NewLocal()
	_, err := l.Acquire(context.Background(), "k", 10*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	release, err := l.Acquire(ctx, "k", time.Minute)
	require.NoError(t, err)
	release()
}

func TestLocal_DoubleReleaseIsNoop(t *testing.T) {
	l := NewLocal()
	r1, err := l.Acquire(context.Background(), "k", time.Minute)
	require.NoError(t, err)
	r1()

	r2, err := l.Acquire(context.Background(), "k", time.Minute)
	require.NoError(t, err)
	r1()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx, "k", time.Minute)
	assert.ErrorIs(t, err, ErrNotAcquired, "stale release must not free a newer holder")
	r2()
}

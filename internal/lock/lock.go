// Package lock provides the per-key guard that serializes attempt starts.
//
// Two implementations exist: Local for a single process and Redis for a
// fleet sharing one database. Both block until the key is free or the
// context ends.
package lock

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotAcquired is returned when the context ends before the key frees up.
var ErrNotAcquired = errors.New("lock: not acquired")

// Release frees a held key. Calling it more than once is a no-op.
type Release func()

// Locker acquires exclusive keys.
type Locker interface {
	// Acquire blocks until key is held or ctx ends. ttl bounds how long a
	// holder that never releases keeps the key.
	Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error)
}

// Local is an in-process Locker.
type Local struct {
	mu   sync.Mutex
	held map[string]chan struct{}
}

// NewLocal creates a Local locker.
func NewLocal() *Local {
	return &Local{held: make(map[string]chan struct{})}
}

// Acquire implements Locker. The ttl is enforced with a timer so a leaked
// release cannot wedge the key forever.
func (l *Local) Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error) {
	for {
		l.mu.Lock()
		wait, busy := l.held[key]
		if !busy {
			done := make(chan struct{})
			l.held[key] = done
			l.mu.Unlock()
			return l.release(key, done, ttl), nil
		}
		l.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return nil, errors.Join(ErrNotAcquired, ctx.Err())
		}
	}
}

func (l *Local) release(key string, done chan struct{}, ttl time.Duration) Release {
	var once sync.Once
	free := func() {
		once.Do(func() {
			l.mu.Lock()
			if l.held[key] == done {
				delete(l.held, key)
			}
			l.mu.Unlock()
			close(done)
		})
	}

	var timer *time.Timer
	if ttl > 0 {
		timer = time.AfterFunc(ttl, free)
	}
	return func() {
		if timer != nil {
			timer.Stop()
		}
		free()
	}
}

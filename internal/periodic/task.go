// Package periodic runs a function on a fixed interval until stopped.
package periodic

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrInterval is returned by Start for a non-positive interval.
var ErrInterval = errors.New("periodic: interval must be positive")

// Task is a running periodic function. Stop it when its owner goes away.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start calls fn every interval in its own goroutine until ctx is done or
// Stop is called. fn is never called concurrently with itself.
func Start(ctx context.Context, interval time.Duration, fn func(time.Time)) (*Task, error) {
	if interval <= 0 {
		return nil, ErrInterval
	}
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(t.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				fn(now)
			}
		}
	}()
	return t, nil
}

// Stop cancels the task and waits for a running tick to return. Safe to call
// more than once.
func (t *Task) Stop() {
	t.once.Do(t.cancel)
	<-t.done
}

// Done is closed once the task has exited.
func (t *Task) Done() <-chan struct{} { return t.done }

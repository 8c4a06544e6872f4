// Package worker runs detached background units of work. Each unit gets its
// own error boundary: failures are logged and recorded on the order itself,
// never returned to the request that triggered them.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Pool launches detached tasks on goroutines bound to its own base context,
// so a task survives the request that scheduled it. There is no cancellation
// handle: once launched, a task runs to completion.
type Pool struct {
	base context.Context
	wg   sync.WaitGroup
}

func NewPool() *Pool {
	return &Pool{base: context.Background()}
}

// Launch runs fn detached. A panic inside fn is recovered and logged here as
// a last resort; tasks are expected to handle their own failures first.
func (p *Pool) Launch(name string, fn func(ctx context.Context)) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				slog.Error("task panicked", "task", name, "panic", r)
			}
		}()
		fn(p.base)
	}()
}

// Wait blocks until all launched tasks finish or the timeout elapses, and
// reports whether the pool drained. Used on shutdown only.
func (p *Pool) Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		slog.Warn("timed out waiting for background tasks")
		return false
	}
}

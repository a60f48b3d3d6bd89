package listener

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andreyxaxa/Image-Transformer/pkg/types/errs"
)

const (
	_defaultQueueSize   = 16
	_defaultSendTimeout = 5 * time.Second
)

// inbox is the closeable request queue in front of a listener loop.
// Closing it is the only way to stop the loop. The channel itself is never closed:
// quit signals shutdown, and the loop drains ch once every in-flight submit returned.
type inbox[T any] struct {
	ch   chan T
	quit chan struct{}

	mu      sync.RWMutex
	closed  bool
	pending sync.WaitGroup // submits past the closed check

	started atomic.Bool
	done    chan struct{}
}

func newInbox[T any](size int) *inbox[T] {
	if size <= 0 {
		size = _defaultQueueSize
	}

	return &inbox[T]{
		ch:   make(chan T, size),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
}

func (b *inbox[T]) submit(ctx context.Context, req T) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return errs.ErrListenerClosed
	}
	b.pending.Add(1)
	b.mu.RUnlock()

	defer b.pending.Done()

	select {
	case b.ch <- req:
		return nil
	case <-b.quit:
		return errs.ErrListenerClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run consumes requests until shutdown, then drains what was accepted.
// ctx is detached from its parent: cancelling it never interrupts an item.
func (b *inbox[T]) run(ctx context.Context, name string, handle func(context.Context, T)) error {
	if !b.started.CompareAndSwap(false, true) {
		return fmt.Errorf("%s - Start - listener already started", name)
	}

	ctx = context.WithoutCancel(ctx)

	go func() {
		defer close(b.done)

		for {
			select {
			case req := <-b.ch:
				handle(ctx, req)
			case <-b.quit:
				b.pending.Wait()

				for {
					select {
					case req := <-b.ch:
						handle(ctx, req)
					default:
						return
					}
				}
			}
		}
	}()

	return nil
}

func (b *inbox[T]) close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true
	close(b.quit)
}

func (b *inbox[T]) shutdown(ctx context.Context) error {
	b.close()

	if !b.started.Load() {
		return nil
	}

	select {
	case <-b.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

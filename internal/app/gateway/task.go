package gateway

import "context"

// Task tracks one asynchronous operation from dispatch to settlement. It is
// created pending and settles exactly once, as fulfilled (result) or
// rejected (error).
type Task[T any] struct {
	done   chan struct{}
	result T
	err    error
}

func newTask[T any]() *Task[T] {
	return &Task[T]{done: make(chan struct{})}
}

func (t *Task[T]) settle(result T, err error) {
	t.result = result
	t.err = err
	close(t.done)
}

// Done is closed when the task settles.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Settled reports whether the task has settled without blocking.
func (t *Task[T]) Settled() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the task settles or ctx is cancelled.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case <-t.done:
		return t.result, t.err
	}
}

// Result blocks until settlement and returns the fulfilled payload.
func (t *Task[T]) Result() T {
	<-t.done
	return t.result
}

// Err blocks until settlement and returns the rejection error, if any.
func (t *Task[T]) Err() error {
	<-t.done
	return t.err
}

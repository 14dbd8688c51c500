package helpers

import "context"

// IgnoreContext gates fn on ctx not having been cancelled yet. Once fn
// starts it runs to completion; cancellation is observed only between
// operations, never mid-I/O.
func IgnoreContext(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn()
}

type result struct {
	data []byte
	err  error
}

// RunWithContext runs fn in its own goroutine and returns early when
// ctx is cancelled first. fn still runs to completion in the
// background, so it must not share mutable state with later operations.
func RunWithContext(ctx context.Context, fn func() ([]byte, error)) ([]byte, error) {
	done := make(chan result, 1)
	go func() {
		data, err := fn()
		done <- result{data, err}
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		return res.data, res.err
	}
}

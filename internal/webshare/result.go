package webshare

import (
	"context"
	"sync"
)

// Result is the pending outcome of a share. It settles exactly once.
type Result struct {
	once  sync.Once
	done  chan struct{}
	value any
	err   error
}

func newResult() *Result {
	return &Result{done: make(chan struct{})}
}

func rejected(err error) *Result {
	r := newResult()
	r.reject(err)
	return r
}

// resolve and reject report whether this call settled the result.
func (r *Result) resolve(v any) bool {
	settled := false
	r.once.Do(func() {
		r.value = v
		close(r.done)
		settled = true
	})
	return settled
}

func (r *Result) reject(err error) bool {
	settled := false
	r.once.Do(func() {
		r.err = err
		close(r.done)
		settled = true
	})
	return settled
}

// Done is closed once the result has settled.
func (r *Result) Done() <-chan struct{} {
	return r.done
}

// Settled reports whether the result has settled without blocking.
func (r *Result) Settled() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the result settles or ctx is done. Giving up on ctx
// does not cancel the native share.
func (r *Result) Wait(ctx context.Context) (any, error) {
	select {
	case <-r.done:
		return r.value, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Package readiness provides a one-shot signal that PDF generation can be offered.
package readiness

import (
	"context"
	"sync"
	"sync/atomic"
)

// Flag starts unset and can be set exactly once. It never resets.
// The zero value is an unset flag ready to use.
type Flag struct {
	init  sync.Once
	once  sync.Once
	ready atomic.Bool
	done  chan struct{}
}

// New returns an unset flag
func New() *Flag {
	return &Flag{}
}

func (f *Flag) channel() chan struct{} {
	f.init.Do(func() {
		f.done = make(chan struct{})
	})
	return f.done
}

// Set marks the flag ready. It reports whether this call performed the transition.
func (f *Flag) Set() bool {
	done := f.channel()
	set := false
	f.once.Do(func() {
		f.ready.Store(true)
		close(done)
		set = true
	})
	return set
}

// Ready reports whether the flag has been set
func (f *Flag) Ready() bool {
	return f.ready.Load()
}

// Done returns a channel closed when the flag is set
func (f *Flag) Done() <-chan struct{} {
	return f.channel()
}

// Wait blocks until the flag is set or ctx is done
func (f *Flag) Wait(ctx context.Context) error {
	select {
	case <-f.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

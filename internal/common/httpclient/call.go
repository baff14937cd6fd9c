package httpclient

import (
	"context"
	"sync"
)

// Call is a request in flight. It settles exactly once; whichever of the
// timer, the transport or the response interpreter gets there first wins
// and every later outcome is dropped.
type Call struct {
	once sync.Once
	done chan struct{}

	resp *Response
	err  error
}

func newCall() *Call {
	return &Call{done: make(chan struct{})}
}

// settle records the outcome and reports whether this was the first
// settlement. onSettle runs only for the first one, before waiters are
// released.
func (c *Call) settle(resp *Response, err error, onSettle ...func()) bool {
	settled := false
	c.once.Do(func() {
		c.resp = resp
		c.err = err
		settled = true
		for _, fn := range onSettle {
			fn()
		}
		close(c.done)
	})
	return settled
}

// Done is closed once the call has settled.
func (c *Call) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the call settles and returns its outcome.
func (c *Call) Wait() (*Response, error) {
	<-c.done
	return c.resp, c.err
}

// WaitContext is Wait bounded by ctx. An expired ctx does not cancel the
// call; it only stops waiting for it.
func (c *Call) WaitContext(ctx context.Context) (*Response, error) {
	select {
	case <-c.done:
		return c.resp, c.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Settled reports, without blocking, whether the call has an outcome yet.
func (c *Call) Settled() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

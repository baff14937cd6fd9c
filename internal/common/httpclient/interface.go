package httpclient

import (
	"context"
)

// Dispatcher is what resource methods need from a client.
type Dispatcher interface {
	// Do sends a request and waits for its outcome.
	Do(ctx context.Context, r *Request) (*Response, error)

	// Go sends a request and returns the pending call.
	Go(ctx context.Context, r *Request) *Call

	// Fetch GETs an absolute URL without credentials.
	Fetch(ctx context.Context, rawURL string) (*Response, error)

	// Config returns the configuration the client was built with.
	Config() Config
}

var _ Dispatcher = &HTTPClient{}

// Package httpclient sends authenticated requests to the DNSimple v1 API and
// turns the responses into plain values plus metadata. It selects the
// credential to use, serializes the JSON body, bounds every call with its
// own timer, and classifies the outcome into success or a typed *Error.
// Resource methods are built on top of Do; this package knows nothing about
// domains or records.
package httpclient

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/tansive/dnsimple-go/internal/common/logtrace"
)

// HTTPClient is safe for concurrent use. Calls share nothing but the
// read-only configuration and the underlying *http.Client.
type HTTPClient struct {
	config     Config
	httpClient *http.Client
}

// ClientOptions contains options for configuring the HTTP client.
type ClientOptions struct {
	HTTPClient            *http.Client // copied; redirects are disabled unless it sets CheckRedirect
	DisableCertValidation bool         // skips TLS verification; for test servers only
}

// NewClient creates a client bound to a copy of config. Credentials are not
// checked here; a call without usable credentials fails with
// CredentialsMissing before any I/O.
func NewClient(config Config, opts ...ClientOptions) *HTTPClient {
	clientOpts := ClientOptions{}
	if len(opts) > 0 {
		clientOpts = opts[0]
	}

	var httpClient *http.Client
	if clientOpts.HTTPClient != nil {
		shallow := *clientOpts.HTTPClient
		httpClient = &shallow
	} else {
		httpClient = &http.Client{}
		if clientOpts.DisableCertValidation {
			httpClient.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: true,
				},
			}
		}
	}
	// A 3xx is an API failure like any other status >= 300. Following it
	// would also replay the credential headers to the Location host.
	if httpClient.CheckRedirect == nil {
		httpClient.CheckRedirect = noRedirect
	}

	return &HTTPClient{
		config:     config,
		httpClient: httpClient,
	}
}

func noRedirect(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
}

// Config returns a copy of the client's configuration.
func (c *HTTPClient) Config() Config {
	return c.config
}

// Do sends r and waits for its outcome. On failure the returned *Response
// is still set whenever the server answered, so Meta is available.
func (c *HTTPClient) Do(ctx context.Context, r *Request) (*Response, error) {
	return c.Go(ctx, r).Wait()
}

// Go sends r in the background and returns the pending Call.
func (c *HTTPClient) Go(ctx context.Context, r *Request) *Call {
	call := newCall()
	logger, _ := logtrace.CallLogger(ctx, r.Method, r.Path)

	mode := SelectAuth(c.config)
	if mode == AuthNone {
		logger.Debug().Msg("no credentials configured")
		call.settle(nil, newError(CredentialsMissing, 0, nil))
		return call
	}

	ctx, cancel := context.WithCancel(ctx)
	req, err := buildHTTPRequest(ctx, c.config, r, mode)
	if err != nil {
		cancel()
		call.settle(nil, newError(RequestFailed, 0, err))
		return call
	}

	logger.Debug().Str("auth", mode.String()).Msg("dispatching request")
	c.dispatch(call, logger, req, r.Operation, cancel)
	return call
}

// Fetch GETs an absolute URL outside the API, without credentials, and
// interprets the answer like an API response.
func (c *HTTPClient) Fetch(ctx context.Context, rawURL string) (*Response, error) {
	call := newCall()
	logger, _ := logtrace.CallLogger(ctx, http.MethodGet, rawURL)

	ctx, cancel := context.WithCancel(ctx)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		cancel()
		return nil, newError(RequestFailed, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.userAgent())

	c.dispatch(call, logger, req, "", cancel)
	return call.Wait()
}

// dispatch runs req in its own goroutine and arms the per-call timer. The
// timer settles the call with Timeout and aborts the request; the aborted
// request's own outcome then loses the race and is dropped.
func (c *HTTPClient) dispatch(call *Call, logger zerolog.Logger, req *http.Request, op Operation, cancel context.CancelFunc) {
	var timer *time.Timer
	if c.config.Timeout > 0 {
		timer = time.AfterFunc(c.config.Timeout, func() {
			call.settle(nil, newError(Timeout, 0, nil), func() {
				logger.Debug().Dur("timeout", c.config.Timeout).Msg("request timeout")
			})
			cancel()
		})
	}

	go func() {
		defer cancel()
		if timer != nil {
			defer timer.Stop()
		}
		resp, err := c.roundTrip(req, op)
		call.settle(resp, err, func() {
			logOutcome(logger, resp, err)
		})
	}()
}

func (c *HTTPClient) roundTrip(req *http.Request, op Operation) (*Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(req, err)
	}
	defer resp.Body.Close()

	meta := metaFromResponse(resp)
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		kind := ConnectionDropped
		if isTimeout(err) {
			kind = Timeout
		}
		return &Response{Meta: meta}, newError(kind, meta.StatusCode, errors.Wrap(err, "reading response body"))
	}

	return interpret(meta, resp.Header, raw, op)
}

func transportError(req *http.Request, err error) *Error {
	cause := errors.Wrapf(err, "%s %s", req.Method, req.URL.Path)
	if isTimeout(err) {
		return newError(Timeout, 0, cause)
	}
	return newError(RequestFailed, 0, cause)
}

// isTimeout reports deadline expiry and connection resets, both of which
// count as a timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func logOutcome(logger zerolog.Logger, resp *Response, err error) {
	ev := logger.Debug()
	if resp != nil {
		ev = ev.Int("status", resp.Meta.StatusCode).
			Str("request_id", resp.Meta.RequestID).
			Str("runtime", resp.Meta.Runtime)
	}
	if err != nil {
		ev.Str("kind", KindOf(err).String()).Err(err).Msg("request failed")
		return
	}
	ev.Msg("request completed")
}

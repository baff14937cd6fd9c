package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// json mirrors encoding/json but decodes numbers as json.Number, so values
// read back from the API keep their exact textual form.
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Request describes one API call. Build it with NewRequest.
type Request struct {
	Method    string
	Path      string    // relative to /v1/
	Body      any       // nil is sent as {}
	Operation Operation // logical operation, see exceptions.go
}

// RequestOption sets an optional part of a Request.
type RequestOption func(*Request)

// WithBody sets the value serialized as the JSON request body.
func WithBody(body any) RequestOption {
	return func(r *Request) {
		r.Body = body
	}
}

// WithOperation names the logical operation a request performs.
func WithOperation(op Operation) RequestOption {
	return func(r *Request) {
		r.Operation = op
	}
}

// NewRequest returns a Request for method and path. A leading slash on path
// is dropped.
func NewRequest(method, path string, opts ...RequestOption) *Request {
	r := &Request{
		Method: strings.ToUpper(method),
		Path:   strings.TrimLeft(path, "/"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Request) sendsBody() bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

func (r *Request) payload() ([]byte, error) {
	if r.Body == nil {
		return []byte("{}"), nil
	}
	if raw, ok := r.Body.([]byte); ok {
		return raw, nil
	}
	return json.Marshal(r.Body)
}

func validMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// buildHTTPRequest turns r into an *http.Request carrying the credentials
// selected by mode.
func buildHTTPRequest(ctx context.Context, cfg Config, r *Request, mode AuthMode) (*http.Request, error) {
	if !validMethod(r.Method) {
		return nil, fmt.Errorf("unsupported method %q", r.Method)
	}

	u := url.URL{
		Scheme: cfg.scheme(),
		Host:   cfg.hostname(),
		Path:   "/" + APIVersion + "/" + r.Path,
	}
	if i := strings.IndexByte(r.Path, '?'); i >= 0 {
		u.Path = "/" + APIVersion + "/" + r.Path[:i]
		u.RawQuery = r.Path[i+1:]
	}

	var body []byte
	if r.sendsBody() {
		var err error
		body, err = r.payload()
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, u.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", cfg.userAgent())
	if r.sendsBody() {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Content-Length", strconv.Itoa(len(body)))
		req.ContentLength = int64(len(body))
	}

	applyAuth(req, cfg, mode)
	return req, nil
}

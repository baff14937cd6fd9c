package httpclient

import (
	"net/http"
	"net/http/httptest"
)

// HandlerTransport is an http.RoundTripper that serves every request with
// Handler in process, recording the answer with httptest.NewRecorder. No
// network is involved, which makes it suitable for exercising resource
// methods against a fake API.
type HandlerTransport struct {
	Handler http.Handler
}

// NewHandlerClient returns an *http.Client backed by a HandlerTransport.
func NewHandlerClient(h http.Handler) *http.Client {
	return &http.Client{Transport: &HandlerTransport{Handler: h}}
}

func (t *HandlerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}

	rec := httptest.NewRecorder()
	t.Handler.ServeHTTP(rec, req)

	resp := rec.Result()
	resp.Request = req
	return resp, nil
}

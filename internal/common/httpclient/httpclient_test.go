package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/sjson"
)

func newTestServer(t *testing.T, h http.HandlerFunc) (*httptest.Server, Config) {
	t.Helper()
	srv := httptest.NewTLSServer(h)
	t.Cleanup(srv.Close)

	cfg := Config{
		Hostname: strings.TrimPrefix(srv.URL, "https://"),
		Email:    "user@example.com",
		Token:    "secret",
		Timeout:  5 * time.Second,
	}
	return srv, cfg
}

func newTestClient(srv *httptest.Server, cfg Config) *HTTPClient {
	return NewClient(cfg, ClientOptions{HTTPClient: srv.Client()})
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func TestDoSuccess(t *testing.T) {
	srv, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/prices", r.URL.Path)
		assert.Equal(t, "user@example.com:secret", r.Header.Get(HeaderToken))
		w.Header().Set(HeaderRequestID, "req-1")
		w.Header().Set(HeaderRuntime, "0.042")
		writeJSON(w, http.StatusOK, `[{"price":{"tld":"com","registration_price":"10.5","minimum_registration":1}}]`)
	})

	resp, err := newTestClient(srv, cfg).Do(context.Background(), NewRequest("GET", "prices"))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, http.StatusOK, resp.Meta.StatusCode)
	assert.Equal(t, "req-1", resp.Meta.RequestID)
	assert.Equal(t, "0.042", resp.Meta.Runtime)
	assert.Empty(t, resp.Meta.TwoFactorToken)

	list, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	price := list[0].(map[string]any)["price"].(map[string]any)
	assert.Equal(t, "com", price["tld"])
	assert.Equal(t, "1", fmt.Sprint(price["minimum_registration"]))
}

func TestDoSendsBody(t *testing.T) {
	srv, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.EqualValues(t, len(body), r.ContentLength)
		assert.JSONEq(t, `{"domain":{"name":"example.com"}}`, string(body))

		out, err := sjson.SetBytes(body, "domain.id", 42)
		require.NoError(t, err)
		writeJSON(w, http.StatusCreated, string(out))
	})

	body := map[string]any{"domain": map[string]any{"name": "example.com"}}
	resp, err := newTestClient(srv, cfg).Do(context.Background(), NewRequest("POST", "domains", WithBody(body)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Meta.StatusCode)

	domain := resp.Data.(map[string]any)["domain"].(map[string]any)
	assert.Equal(t, "example.com", domain["name"])
	assert.Equal(t, "42", fmt.Sprint(domain["id"]))
}

func TestDoNoContent(t *testing.T) {
	srv, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	resp, err := newTestClient(srv, cfg).Do(context.Background(), NewRequest("DELETE", "domains/example.com"))
	require.NoError(t, err)
	assert.Equal(t, true, resp.Data)
	assert.Equal(t, http.StatusNoContent, resp.Meta.StatusCode)
}

func TestDoEmptyBody(t *testing.T) {
	status := http.StatusOK
	srv, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, "  \n")
	})
	client := newTestClient(srv, cfg)

	resp, err := client.Do(context.Background(), NewRequest("GET", "domains/example.com/zone"))
	require.NoError(t, err)
	assert.Nil(t, resp.Data)

	status = http.StatusInternalServerError
	resp, err = client.Do(context.Background(), NewRequest("GET", "domains/example.com/zone"))
	require.Error(t, err)
	assert.Equal(t, APIError, KindOf(err))
	require.NotNil(t, resp)
	assert.Nil(t, resp.Data)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Nil(t, apiErr.Payload)
	assert.Empty(t, apiErr.Message)
}

func TestDoInvalidJSON(t *testing.T) {
	srv, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "<html>oops</html>\n")
	})

	resp, err := newTestClient(srv, cfg).Do(context.Background(), NewRequest("GET", "domains"))
	require.Error(t, err)
	assert.Equal(t, InvalidResponseBody, KindOf(err))
	assert.ErrorIs(t, err, ErrInvalidResponseBody)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusOK, resp.Meta.StatusCode)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "<html>oops</html>", e.Payload)
}

func TestDoAPIError(t *testing.T) {
	srv, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderRequestID, "req-err")
		writeJSON(w, http.StatusUnprocessableEntity, `{"errors":{"name":["has already been taken"]}}`)
	})

	resp, err := newTestClient(srv, cfg).Do(context.Background(), NewRequest("POST", "domains"))
	require.Error(t, err)
	assert.Equal(t, APIError, KindOf(err))
	assert.ErrorIs(t, err, ErrAPI)
	assert.False(t, IsRetryable(err))
	assert.Equal(t, "API error (HTTP 422): has already been taken", err.Error())
	assert.Equal(t, "req-err", resp.Meta.RequestID)

	var e *Error
	require.ErrorAs(t, err, &e)
	payload, ok := e.Payload.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, payload, "errors")
}

func TestDoOtpRequired(t *testing.T) {
	withHeader := true
	srv, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if withHeader {
			w.Header().Set(HeaderOTP, "required")
		}
		writeJSON(w, http.StatusUnauthorized, `{"message":"Authentication failed"}`)
	})
	cfg.Token = ""
	cfg.Password = "pw"
	client := newTestClient(srv, cfg)

	_, err := client.Do(context.Background(), NewRequest("GET", "user"))
	require.Error(t, err)
	assert.Equal(t, OtpRequired, KindOf(err))
	assert.ErrorIs(t, err, ErrOtpRequired)

	withHeader = false
	_, err = client.Do(context.Background(), NewRequest("GET", "user"))
	require.Error(t, err)
	assert.Equal(t, APIError, KindOf(err))
	assert.Contains(t, err.Error(), "Authentication failed")
}

func TestDoTwoFactorTokenInMeta(t *testing.T) {
	srv, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "user@example.com", user)
		assert.Equal(t, "pw", pass)
		assert.Equal(t, "123456", r.Header.Get(HeaderOTP))
		w.Header().Set(HeaderOTPToken, "exchange-token")
		writeJSON(w, http.StatusOK, `{"user":{"email":"user@example.com"}}`)
	})
	cfg.Token = ""
	cfg.Password = "pw"
	cfg.TwoFactorOTP = "123456"

	resp, err := newTestClient(srv, cfg).Do(context.Background(), NewRequest("GET", "user"))
	require.NoError(t, err)
	assert.Equal(t, "exchange-token", resp.Meta.TwoFactorToken)
}

func TestDoDomainCheck(t *testing.T) {
	srv, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/domains/available.com/check", r.URL.Path)
		writeJSON(w, http.StatusNotFound, `{"name":"available.com","status":"available","price":"14.00","currency":"USD","currency_symbol":"$","minimum_number_of_years":1}`)
	})
	client := newTestClient(srv, cfg)

	resp, err := client.Do(context.Background(), NewRequest("GET", "domains/available.com/check", WithOperation(OpDomainCheck)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.Meta.StatusCode)
	assert.Equal(t, "available", resp.Data.(map[string]any)["status"])

	// without the operation the same answer is an error
	_, err = client.Do(context.Background(), NewRequest("GET", "domains/available.com/check"))
	require.Error(t, err)
	assert.Equal(t, APIError, KindOf(err))
}

func TestDoDoesNotFollowRedirects(t *testing.T) {
	var leaked atomic.Int32
	elsewhere := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		leaked.Add(1)
		writeJSON(w, http.StatusOK, `{"ok":true}`)
	}))
	t.Cleanup(elsewhere.Close)

	var followups atomic.Int32
	srv, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/domains/example.com":
			w.Header().Set("Location", r.URL.Query().Get("to"))
			w.WriteHeader(http.StatusFound)
		default:
			followups.Add(1)
			writeJSON(w, http.StatusOK, `{"ok":true}`)
		}
	})

	tests := []struct {
		name   string
		client *HTTPClient
	}{
		{"caller client", newTestClient(srv, cfg)},
		{"default client", NewClient(cfg, ClientOptions{DisableCertValidation: true})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, target := range []string{"/v1/elsewhere", elsewhere.URL + "/steal"} {
				path := "domains/example.com?to=" + url.QueryEscape(target)
				resp, err := tt.client.Do(context.Background(), NewRequest("DELETE", path))
				require.Error(t, err)
				assert.Equal(t, APIError, KindOf(err))
				require.NotNil(t, resp)
				assert.Equal(t, http.StatusFound, resp.Meta.StatusCode)

				var apiErr *Error
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusFound, apiErr.StatusCode)
			}
		})
	}

	assert.Zero(t, followups.Load())
	assert.Zero(t, leaked.Load())
	assert.Nil(t, srv.Client().CheckRedirect, "caller's client must not be modified")
}

func TestDoCredentialsMissing(t *testing.T) {
	var hits atomic.Int32
	srv, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	})
	cfg.Email = ""
	cfg.Token = ""

	call := newTestClient(srv, cfg).Go(context.Background(), NewRequest("GET", "domains"))
	assert.True(t, call.Settled())

	resp, err := call.Wait()
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Equal(t, CredentialsMissing, KindOf(err))
	assert.ErrorIs(t, err, ErrCredentialsMissing)
	assert.Equal(t, "credentials missing", err.Error())
	assert.EqualValues(t, 0, hits.Load())
}

func TestDoTimeout(t *testing.T) {
	release := make(chan struct{})
	srv, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
		writeJSON(w, http.StatusOK, `{"late":true}`)
	})
	defer close(release)
	cfg.Timeout = 20 * time.Millisecond

	start := time.Now()
	call := newTestClient(srv, cfg).Go(context.Background(), NewRequest("GET", "domains"))
	resp, err := call.Wait()
	assert.Less(t, time.Since(start), 2*time.Second)

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Equal(t, Timeout, KindOf(err))
	assert.True(t, IsRetryable(err))
	assert.Equal(t, "request timeout", err.Error())

	// the aborted request never replaces the outcome
	time.Sleep(50 * time.Millisecond)
	resp, err = call.Wait()
	assert.Nil(t, resp)
	assert.Equal(t, Timeout, KindOf(err))
}

func TestDoParentDeadline(t *testing.T) {
	srv, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	cfg.Timeout = 0

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := newTestClient(srv, cfg).Do(ctx, NewRequest("GET", "domains"))
	require.Error(t, err)
	assert.Equal(t, Timeout, KindOf(err))
}

func TestDoRequestFailed(t *testing.T) {
	srv, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := newTestClient(srv, cfg).Do(context.Background(), NewRequest("GET", "domains"))
	require.Error(t, err)
	assert.Equal(t, RequestFailed, KindOf(err))
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.True(t, strings.HasPrefix(err.Error(), "request failed: GET /v1/domains"))

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.NotNil(t, e.Err)
}

func TestDoUnsupportedMethod(t *testing.T) {
	srv, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be sent")
	})

	_, err := newTestClient(srv, cfg).Do(context.Background(), NewRequest("PATCH", "domains"))
	require.Error(t, err)
	assert.Equal(t, RequestFailed, KindOf(err))
}

func TestDoConnectionDropped(t *testing.T) {
	srv, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, buf, err := hj.Hijack()
		require.NoError(t, err)
		buf.WriteString("HTTP/1.1 200 OK\r\nContent-Type: application/json\r\nContent-Length: 100\r\n\r\n{\"domains\":")
		buf.Flush()
		conn.Close()
	})

	resp, err := newTestClient(srv, cfg).Do(context.Background(), NewRequest("GET", "domains"))
	require.Error(t, err)
	assert.Equal(t, ConnectionDropped, KindOf(err))
	assert.True(t, IsRetryable(err))
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusOK, resp.Meta.StatusCode)
}

func TestConcurrentCalls(t *testing.T) {
	srv, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, fmt.Sprintf(`{"path":%q}`, r.URL.Path))
	})
	client := newTestClient(srv, cfg)

	calls := make([]*Call, 10)
	for i := range calls {
		calls[i] = client.Go(context.Background(), NewRequest("GET", fmt.Sprintf("domains/d%d.com", i)))
	}
	for i, call := range calls {
		resp, err := call.Wait()
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("/v1/domains/d%d.com", i), resp.Data.(map[string]any)["path"])
	}
}

func TestFetch(t *testing.T) {
	srv, cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(HeaderToken))
		_, _, ok := r.BasicAuth()
		assert.False(t, ok)
		switch r.URL.Path {
		case "/services/heroku/config.json":
			writeJSON(w, http.StatusOK, `{"name":"Heroku","fields":[]}`)
		default:
			http.NotFound(w, r)
		}
	})
	cfg.Email = ""
	cfg.Token = ""
	client := newTestClient(srv, cfg)

	resp, err := client.Fetch(context.Background(), srv.URL+"/services/heroku/config.json")
	require.NoError(t, err)
	assert.Equal(t, "Heroku", resp.Data.(map[string]any)["name"])

	_, err = client.Fetch(context.Background(), srv.URL+"/services/missing/config.json")
	require.Error(t, err)
	assert.Equal(t, InvalidResponseBody, KindOf(err))
}

func TestHandlerTransport(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/user", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"user":{"id":1}}`)
	})
	cfg := Config{Hostname: "api.test", Email: "a@b.c", Token: "t"}
	client := NewClient(cfg, ClientOptions{HTTPClient: NewHandlerClient(mux)})

	resp, err := client.Do(context.Background(), NewRequest("GET", "user"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Meta.StatusCode)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.Do(ctx, NewRequest("GET", "user"))
	require.Error(t, err)
	assert.Equal(t, RequestFailed, KindOf(err))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message", `{"message":"Not found","error":"x"}`, "Not found"},
		{"error", `{"error":"Bad request","errors":{"a":"b"}}`, "Bad request"},
		{"errors string", `{"errors":{"name":"is invalid","other":"ignored"}}`, "is invalid"},
		{"errors array", `{"errors":{"name":["has already been taken","x"]}}`, "has already been taken"},
		{"null message falls through", `{"message":null,"error":"boom"}`, "boom"},
		{"nothing", `{"foo":"bar"}`, ""},
		{"array body", `["a"]`, ""},
		{"empty", ``, ""},
		{"invalid", `{not json`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractMessage([]byte(tt.body)))
		})
	}
}

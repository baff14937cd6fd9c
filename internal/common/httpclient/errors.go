package httpclient

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tansive/dnsimple-go/internal/common/apperrors"
)

// Kind classifies how a call failed.
type Kind int

const (
	KindUnknown Kind = iota
	CredentialsMissing
	Timeout
	ConnectionDropped
	RequestFailed
	InvalidResponseBody
	OtpRequired
	APIError
)

// Sentinels for each kind. Every *Error unwraps to the sentinel of its kind.
var (
	ErrClient              = apperrors.New("dnsimple client error")
	ErrCredentialsMissing  = ErrClient.New("credentials missing")
	ErrTimeout             = ErrClient.New("request timeout")
	ErrConnectionDropped   = ErrClient.New("connection dropped")
	ErrRequestFailed       = ErrClient.New("request failed")
	ErrInvalidResponseBody = ErrClient.New("not json")
	ErrOtpRequired         = ErrClient.New("twoFactorOTP required").SetStatusCode(http.StatusUnauthorized)
	ErrAPI                 = ErrClient.New("API error")
)

func (k Kind) String() string {
	switch k {
	case CredentialsMissing:
		return "CredentialsMissing"
	case Timeout:
		return "Timeout"
	case ConnectionDropped:
		return "ConnectionDropped"
	case RequestFailed:
		return "RequestFailed"
	case InvalidResponseBody:
		return "InvalidResponseBody"
	case OtpRequired:
		return "OtpRequired"
	case APIError:
		return "ApiError"
	default:
		return "Unknown"
	}
}

func (k Kind) sentinel() apperrors.Error {
	switch k {
	case CredentialsMissing:
		return ErrCredentialsMissing
	case Timeout:
		return ErrTimeout
	case ConnectionDropped:
		return ErrConnectionDropped
	case RequestFailed:
		return ErrRequestFailed
	case InvalidResponseBody:
		return ErrInvalidResponseBody
	case OtpRequired:
		return ErrOtpRequired
	case APIError:
		return ErrAPI
	default:
		return ErrClient
	}
}

// Error is the single error type returned by a call.
type Error struct {
	Kind       Kind
	StatusCode int    // HTTP status, 0 when no response arrived
	Message    string // message extracted from the server payload
	Payload    any    // parsed body, or the raw text when it was not JSON
	Err        error  // transport cause, if any
}

func newError(kind Kind, status int, cause error) *Error {
	return &Error{Kind: kind, StatusCode: status, Err: cause}
}

func (e *Error) Error() string {
	msg := e.Kind.sentinel().Error()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.StatusCode)
	}
	switch {
	case e.Message != "":
		msg += ": " + e.Message
	case e.Err != nil:
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the kind sentinel and the transport cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Retryable reports whether repeating the same call may succeed.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case Timeout, ConnectionDropped, RequestFailed:
		return true
	default:
		return false
	}
}

// KindOf returns the Kind of err, or KindUnknown when err did not come from
// a call.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsRetryable reports whether err is a call error worth retrying.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable()
}

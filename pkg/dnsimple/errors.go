package dnsimple

import (
	"github.com/tansive/dnsimple-go/internal/common/apperrors"
	"github.com/tansive/dnsimple-go/internal/common/httpclient"
)

type (
	// Error is returned by every call that fails. Inspect Kind, or use
	// errors.Is with the sentinels below.
	Error = httpclient.Error
	// Kind classifies an Error.
	Kind = httpclient.Kind
)

const (
	KindUnknown         = httpclient.KindUnknown
	CredentialsMissing  = httpclient.CredentialsMissing
	Timeout             = httpclient.Timeout
	ConnectionDropped   = httpclient.ConnectionDropped
	RequestFailed       = httpclient.RequestFailed
	InvalidResponseBody = httpclient.InvalidResponseBody
	OtpRequired         = httpclient.OtpRequired
	APIError            = httpclient.APIError
)

var (
	ErrCredentialsMissing  = httpclient.ErrCredentialsMissing
	ErrTimeout             = httpclient.ErrTimeout
	ErrConnectionDropped   = httpclient.ErrConnectionDropped
	ErrRequestFailed       = httpclient.ErrRequestFailed
	ErrInvalidResponseBody = httpclient.ErrInvalidResponseBody
	ErrOtpRequired         = httpclient.ErrOtpRequired
	ErrAPI                 = httpclient.ErrAPI

	ErrInvalidConfig      = apperrors.New("invalid configuration")
	ErrUnexpectedResponse = httpclient.ErrClient.New("unexpected response shape")
	ErrInvalidDomainName  = apperrors.New("invalid domain name")
)

// KindOf returns the Kind of err, or KindUnknown when err did not come from
// a call.
func KindOf(err error) Kind {
	return httpclient.KindOf(err)
}

// IsRetryable reports whether repeating the call that produced err may
// succeed.
func IsRetryable(err error) bool {
	return httpclient.IsRetryable(err)
}

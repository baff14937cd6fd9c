package httpclient

import (
	"time"
)

const (
	// DefaultHostname is the production API host.
	DefaultHostname = "api.dnsimple.com"
	// SandboxHostname is the sandbox API host.
	SandboxHostname = "api.sandbox.dnsimple.com"
	// DefaultTimeout bounds a whole call, from dial to the last body byte.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "dnsimple-go/" + Version

	// Version of this client.
	Version = "0.3.0"

	// APIVersion is the path segment every request path is prefixed with.
	APIVersion = "v1"
)

// Config holds everything a Client needs to talk to the API. A Client keeps
// its own copy; changing a Config after NewClient has no effect on the client.
type Config struct {
	// Hostname is the API host, optionally with a port.
	Hostname string `validate:"required"`
	// Scheme defaults to https.
	Scheme string `validate:"omitempty,oneof=https http"`

	Email          string `validate:"omitempty,email"`
	Token          string // account API token, used with Email
	DomainToken    string // token scoped to a single domain
	Password       string // account password, used with Email
	TwoFactorOTP   string // one-time password sent with password auth
	TwoFactorToken string // exchange token issued after a successful OTP

	// Timeout bounds a whole call. Zero disables the per-call timer.
	Timeout   time.Duration `validate:"gte=0"`
	UserAgent string
}

// DefaultConfig returns a Config with the production host and default
// timeout and no credentials.
func DefaultConfig() Config {
	return Config{
		Hostname:  DefaultHostname,
		Scheme:    "https",
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

func (c Config) scheme() string {
	if c.Scheme == "" {
		return "https"
	}
	return c.Scheme
}

func (c Config) userAgent() string {
	if c.UserAgent == "" {
		return DefaultUserAgent
	}
	return c.UserAgent
}

func (c Config) hostname() string {
	if c.Hostname == "" {
		return DefaultHostname
	}
	return c.Hostname
}

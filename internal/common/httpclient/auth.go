package httpclient

import (
	"net/http"
)

// Headers understood by the API.
const (
	HeaderToken           = "X-DNSimple-Token"
	HeaderDomainToken     = "X-DNSimple-Domain-Token"
	HeaderOTP             = "X-DNSimple-OTP"
	HeaderOTPToken        = "X-DNSimple-OTP-Token"
	HeaderTwoFactorStrict = "X-DNSimple-2FA-Strict"
	HeaderRequestID       = "X-Request-Id"
	HeaderRuntime         = "X-Runtime"
)

// twoFactorPassword is the fixed basic-auth password that goes with an
// exchange token.
const twoFactorPassword = "x-2fa-basic"

// AuthMode is the primary credential a request is sent with.
type AuthMode int

const (
	AuthNone AuthMode = iota
	AuthToken
	AuthTwoFactorExchange
	AuthDomainToken
	AuthPassword
)

func (m AuthMode) String() string {
	switch m {
	case AuthToken:
		return "token"
	case AuthTwoFactorExchange:
		return "two-factor-exchange"
	case AuthDomainToken:
		return "domain-token"
	case AuthPassword:
		return "password"
	default:
		return "none"
	}
}

// SelectAuth picks the primary credential for cfg. The order is fixed:
// email+token, then the two-factor exchange token, then a domain token on
// its own, then email+password. AuthNone means nothing usable is configured.
//
// A configured domain token is always sent as well; it layers on top of any
// primary mode.
func SelectAuth(cfg Config) AuthMode {
	switch {
	case cfg.Email != "" && cfg.Token != "":
		return AuthToken
	case cfg.TwoFactorToken != "":
		return AuthTwoFactorExchange
	case cfg.DomainToken != "":
		return AuthDomainToken
	case cfg.Email != "" && cfg.Password != "":
		return AuthPassword
	default:
		return AuthNone
	}
}

// applyAuth sets the headers and basic-auth credential for mode.
func applyAuth(req *http.Request, cfg Config, mode AuthMode) {
	switch mode {
	case AuthToken:
		req.Header.Set(HeaderToken, cfg.Email+":"+cfg.Token)
	case AuthTwoFactorExchange:
		req.SetBasicAuth(cfg.TwoFactorToken, twoFactorPassword)
		req.Header.Set(HeaderTwoFactorStrict, "1")
	case AuthPassword:
		req.SetBasicAuth(cfg.Email, cfg.Password)
		if cfg.TwoFactorOTP != "" {
			req.Header.Set(HeaderTwoFactorStrict, "1")
			req.Header.Set(HeaderOTP, cfg.TwoFactorOTP)
		}
	}

	if cfg.DomainToken != "" {
		req.Header.Set(HeaderDomainToken, cfg.DomainToken)
	}
}

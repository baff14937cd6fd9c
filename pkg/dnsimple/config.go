package dnsimple

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/tansive/dnsimple-go/internal/common/httpclient"
	"gopkg.in/yaml.v3"
)

// Config holds the API host, credentials and timeout of a Client.
type Config = httpclient.Config

const (
	DefaultHostname = httpclient.DefaultHostname
	SandboxHostname = httpclient.SandboxHostname
	DefaultTimeout  = httpclient.DefaultTimeout
	Version         = httpclient.Version
)

// Environment variables read by ConfigFromEnv.
const (
	EnvHostname       = "DNSIMPLE_HOSTNAME"
	EnvEmail          = "DNSIMPLE_EMAIL"
	EnvToken          = "DNSIMPLE_TOKEN"
	EnvDomainToken    = "DNSIMPLE_DOMAIN_TOKEN"
	EnvPassword       = "DNSIMPLE_PASS"
	EnvTwoFactorOTP   = "DNSIMPLE_OTP"
	EnvTwoFactorToken = "DNSIMPLE_OTP_TOKEN"
	EnvTimeout        = "DNSIMPLE_TIMEOUT" // milliseconds
)

// DefaultConfig returns a Config for the production API with the default
// timeout and no credentials.
func DefaultConfig() Config {
	return httpclient.DefaultConfig()
}

// Option adjusts the configuration or transport of a Client.
type Option func(*clientOptions)

type clientOptions struct {
	config            Config
	httpClient        *http.Client
	insecure          bool
	servicesConfigURL string
}

func WithHostname(hostname string) Option {
	return func(o *clientOptions) { o.config.Hostname = hostname }
}

// WithSandbox points the client at the sandbox API.
func WithSandbox() Option {
	return WithHostname(SandboxHostname)
}

// WithToken authenticates with the account email and API token.
func WithToken(email, token string) Option {
	return func(o *clientOptions) {
		o.config.Email = email
		o.config.Token = token
	}
}

// WithPassword authenticates with the account email and password.
func WithPassword(email, password string) Option {
	return func(o *clientOptions) {
		o.config.Email = email
		o.config.Password = password
	}
}

func WithDomainToken(token string) Option {
	return func(o *clientOptions) { o.config.DomainToken = token }
}

// WithTwoFactorOTP sends a one-time password along with password auth.
func WithTwoFactorOTP(otp string) Option {
	return func(o *clientOptions) { o.config.TwoFactorOTP = otp }
}

// WithTwoFactorToken authenticates with an exchange token previously
// returned in Meta.TwoFactorToken.
func WithTwoFactorToken(token string) Option {
	return func(o *clientOptions) { o.config.TwoFactorToken = token }
}

// WithTimeout bounds every call. Zero disables the per-call timer.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.config.Timeout = d }
}

func WithUserAgent(ua string) Option {
	return func(o *clientOptions) { o.config.UserAgent = ua }
}

// WithHTTPClient sends requests through c instead of a default client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = c }
}

// WithInsecureTLS disables certificate verification. Only useful against
// test servers.
func WithInsecureTLS() Option {
	return func(o *clientOptions) { o.insecure = true }
}

// WithServicesConfigURL overrides where Services.Config fetches service
// definitions from. The service name and "/config.json" are appended.
func WithServicesConfigURL(base string) Option {
	return func(o *clientOptions) { o.servicesConfigURL = strings.TrimRight(base, "/") }
}

// fileConfig is the on-disk shape of a configuration file.
type fileConfig struct {
	Hostname       string `toml:"hostname" yaml:"hostname"`
	Scheme         string `toml:"scheme" yaml:"scheme"`
	Email          string `toml:"email" yaml:"email"`
	Token          string `toml:"token" yaml:"token"`
	DomainToken    string `toml:"domain_token" yaml:"domain_token"`
	Password       string `toml:"password" yaml:"password"`
	TwoFactorOTP   string `toml:"two_factor_otp" yaml:"two_factor_otp"`
	TwoFactorToken string `toml:"two_factor_token" yaml:"two_factor_token"`
	TimeoutMs      *int64 `toml:"timeout_ms" yaml:"timeout_ms"` // absent means the default
	UserAgent      string `toml:"user_agent" yaml:"user_agent"`
}

func (f fileConfig) config() Config {
	cfg := DefaultConfig()
	if f.Hostname != "" {
		cfg.Hostname = f.Hostname
	}
	if f.Scheme != "" {
		cfg.Scheme = f.Scheme
	}
	if f.UserAgent != "" {
		cfg.UserAgent = f.UserAgent
	}
	if f.TimeoutMs != nil {
		cfg.Timeout = time.Duration(*f.TimeoutMs) * time.Millisecond
	}
	cfg.Email = f.Email
	cfg.Token = f.Token
	cfg.DomainToken = f.DomainToken
	cfg.Password = f.Password
	cfg.TwoFactorOTP = f.TwoFactorOTP
	cfg.TwoFactorToken = f.TwoFactorToken
	return cfg
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) configuration file
// and validates it. Unset fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, ErrInvalidConfig.MsgErr("unable to read "+path, err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &fc); err != nil {
			return Config{}, ErrInvalidConfig.MsgErr("unable to parse "+path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, ErrInvalidConfig.MsgErr("unable to parse "+path, err)
		}
	default:
		return Config{}, ErrInvalidConfig.Msg("unsupported config file extension " + ext)
	}

	cfg := fc.config()
	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigFromEnv builds a Config from DNSIMPLE_* environment variables.
// Variables missing from the process environment are looked up in the
// given .env files, or in ./.env when none are given.
func ConfigFromEnv(envFiles ...string) (Config, error) {
	fileEnv, err := godotenv.Read(envFiles...)
	if err != nil {
		if len(envFiles) > 0 || !errors.Is(err, os.ErrNotExist) {
			return Config{}, ErrInvalidConfig.MsgErr("unable to read env file", err)
		}
		fileEnv = map[string]string{}
	}
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return fileEnv[key]
	}

	cfg := DefaultConfig()
	if v := lookup(EnvHostname); v != "" {
		cfg.Hostname = v
	}
	cfg.Email = lookup(EnvEmail)
	cfg.Token = lookup(EnvToken)
	cfg.DomainToken = lookup(EnvDomainToken)
	cfg.Password = lookup(EnvPassword)
	cfg.TwoFactorOTP = lookup(EnvTwoFactorOTP)
	cfg.TwoFactorToken = lookup(EnvTwoFactorToken)
	if v := lookup(EnvTimeout); v != "" {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, ErrInvalidConfig.MsgErr(EnvTimeout+" must be a number of milliseconds", err)
		}
		cfg.Timeout = time.Duration(ms) * time.Millisecond
	}

	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateConfig checks field formats. Whether the credentials are usable
// is only known when a call is made.
func ValidateConfig(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrInvalidConfig.Err(err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Field()+" failed "+fe.Tag())
	}
	return ErrInvalidConfig.Msg("invalid configuration: " + strings.Join(msgs, ", "))
}

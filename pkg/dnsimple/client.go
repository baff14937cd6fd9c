// Package dnsimple is a client for the DNSimple v1 REST API.
//
// Every method returns the decoded result, the *Response carrying the
// request id, runtime and status of the call, and an error. The *Response
// is non-nil whenever the server answered, including on API errors.
package dnsimple

import (
	"context"
	"net/http"

	"github.com/tansive/dnsimple-go/internal/common/httpclient"
)

type (
	// Response is the raw outcome of a call: parsed JSON data plus Meta.
	Response = httpclient.Response
	// Meta carries the status code and response headers of interest.
	Meta = httpclient.Meta
	// Call is a request in flight, returned by Client.Go.
	Call = httpclient.Call
	// RequestOption sets an optional part of a raw request.
	RequestOption = httpclient.RequestOption
	// Operation names a logical API operation.
	Operation = httpclient.Operation
)

// OpDomainCheck marks an availability check, where 404 is a success.
const OpDomainCheck = httpclient.OpDomainCheck

// DefaultServicesConfigURL is where service definitions are published.
const DefaultServicesConfigURL = "https://raw.githubusercontent.com/aetrion/dnsimple-services/master/services"

// WithBody sets the value sent as the JSON request body of a raw request.
func WithBody(v any) RequestOption {
	return httpclient.WithBody(v)
}

// WithOperation names the logical operation of a raw request.
func WithOperation(op Operation) RequestOption {
	return httpclient.WithOperation(op)
}

// Client talks to one API host with one set of credentials. It is safe for
// concurrent use.
type Client struct {
	dispatcher        httpclient.Dispatcher
	servicesConfigURL string

	Domains        *DomainsService
	Records        *RecordsService
	Memberships    *MembershipsService
	Registrar      *RegistrarService
	DomainServices *DomainServicesService
	EmailForwards  *EmailForwardsService
	Certificates   *CertificatesService
	Services       *ServicesService
	Templates      *TemplatesService
	Contacts       *ContactsService
	Account        *AccountService
}

// New returns a client for the production API configured by opts.
func New(opts ...Option) *Client {
	return NewWithConfig(DefaultConfig(), opts...)
}

// NewWithConfig returns a client for cfg with opts applied on top. cfg is
// copied; later changes to it do not affect the client.
func NewWithConfig(cfg Config, opts ...Option) *Client {
	o := clientOptions{
		config:            cfg,
		servicesConfigURL: DefaultServicesConfigURL,
	}
	for _, opt := range opts {
		opt(&o)
	}

	d := httpclient.NewClient(o.config, httpclient.ClientOptions{
		HTTPClient:            o.httpClient,
		DisableCertValidation: o.insecure,
	})
	return newClient(d, o.servicesConfigURL)
}

func newClient(d httpclient.Dispatcher, servicesConfigURL string) *Client {
	c := &Client{
		dispatcher:        d,
		servicesConfigURL: servicesConfigURL,
	}
	c.Domains = &DomainsService{client: c}
	c.Records = &RecordsService{client: c}
	c.Memberships = &MembershipsService{client: c}
	c.Registrar = &RegistrarService{client: c}
	c.DomainServices = &DomainServicesService{client: c}
	c.EmailForwards = &EmailForwardsService{client: c}
	c.Certificates = &CertificatesService{client: c}
	c.Services = &ServicesService{client: c}
	c.Templates = &TemplatesService{client: c}
	c.Contacts = &ContactsService{client: c}
	c.Account = &AccountService{client: c}
	return c
}

// Config returns a copy of the client's configuration.
func (c *Client) Config() Config {
	return c.dispatcher.Config()
}

// Do sends a raw request. path is relative to /v1/, for example
// "domains/example.com/records".
func (c *Client) Do(ctx context.Context, method, path string, opts ...RequestOption) (*Response, error) {
	return c.dispatcher.Do(ctx, httpclient.NewRequest(method, path, opts...))
}

// Go sends a raw request without waiting for it.
func (c *Client) Go(ctx context.Context, method, path string, opts ...RequestOption) *Call {
	return c.dispatcher.Go(ctx, httpclient.NewRequest(method, path, opts...))
}

func (c *Client) get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, opts...)
}

func (c *Client) post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, WithBody(body))
}

func (c *Client) put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, WithBody(body))
}

// delete reports whether the server confirmed the removal.
func (c *Client) delete(ctx context.Context, path string) (bool, *Response, error) {
	resp, err := c.Do(ctx, http.MethodDelete, path)
	if err != nil {
		return false, resp, err
	}
	return deleted(resp), resp, nil
}

func deleted(resp *Response) bool {
	switch resp.Meta.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return true
	default:
		return false
	}
}

package dnsimple

import (
	"context"
	"net/http"
	"strconv"
)

// CertificatesService orders SSL certificates for hosts of a domain.
type CertificatesService struct {
	client *Client
}

func certificatePath(domain string, id int64, action ...string) (string, error) {
	return domainPath(domain, append([]string{"certificates", strconv.FormatInt(id, 10)}, action...)...)
}

func (s *CertificatesService) List(ctx context.Context, domain string) ([]Certificate, *Response, error) {
	path, err := domainPath(domain, "certificates")
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.client.get(ctx, path)
	if err != nil {
		return nil, resp, err
	}
	certs, err := unwrapList[Certificate](resp.Data, "certificate")
	return certs, resp, err
}

func (s *CertificatesService) Get(ctx context.Context, domain string, id int64) (*Certificate, *Response, error) {
	path, err := certificatePath(domain, id)
	if err != nil {
		return nil, nil, err
	}
	return s.certificateCall(ctx, http.MethodGet, path, nil)
}

// Create orders a certificate for subdomain ("" or "www" for instance).
// With an empty csr the API generates the key pair.
func (s *CertificatesService) Create(ctx context.Context, domain, subdomain string, contactID int64, csr string) (*Certificate, *Response, error) {
	path, err := domainPath(domain, "certificates")
	if err != nil {
		return nil, nil, err
	}
	cert := map[string]any{
		"name":       subdomain,
		"contact_id": contactID,
	}
	if csr != "" {
		cert["csr"] = csr
	}
	return s.certificateCall(ctx, http.MethodPost, path, map[string]any{"certificate": cert})
}

// Configure prepares an ordered certificate for submission.
func (s *CertificatesService) Configure(ctx context.Context, domain string, id int64) (*Certificate, *Response, error) {
	path, err := certificatePath(domain, id, "configure")
	if err != nil {
		return nil, nil, err
	}
	return s.certificateCall(ctx, http.MethodPut, path, nil)
}

// Submit sends the certificate to the authority; approverEmail receives the
// approval request.
func (s *CertificatesService) Submit(ctx context.Context, domain string, id int64, approverEmail string) (*Certificate, *Response, error) {
	path, err := certificatePath(domain, id, "submit")
	if err != nil {
		return nil, nil, err
	}
	return s.certificateCall(ctx, http.MethodPut, path, map[string]any{
		"certificate": map[string]any{"approver_email": approverEmail},
	})
}

func (s *CertificatesService) certificateCall(ctx context.Context, method, path string, body any) (*Certificate, *Response, error) {
	var opts []RequestOption
	if body != nil {
		opts = append(opts, WithBody(body))
	}
	resp, err := s.client.Do(ctx, method, path, opts...)
	if err != nil {
		return nil, resp, err
	}
	cert, err := unwrapOne[Certificate](resp.Data, "certificate")
	return cert, resp, err
}

package dnsimple

import (
	"context"
	"strconv"
)

// EmailForwardsService manages the email forwards of a domain.
type EmailForwardsService struct {
	client *Client
}

func (s *EmailForwardsService) List(ctx context.Context, domain string) ([]EmailForward, *Response, error) {
	path, err := domainPath(domain, "email_forwards")
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.client.get(ctx, path)
	if err != nil {
		return nil, resp, err
	}
	forwards, err := unwrapList[EmailForward](resp.Data, "email_forward")
	return forwards, resp, err
}

// Create forwards mail for from (the local part, or a full address in the
// domain) to the address to.
func (s *EmailForwardsService) Create(ctx context.Context, domain, from, to string) (*EmailForward, *Response, error) {
	path, err := domainPath(domain, "email_forwards")
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.client.post(ctx, path, map[string]any{
		"email_forward": map[string]any{"from": from, "to": to},
	})
	if err != nil {
		return nil, resp, err
	}
	forward, err := unwrapOne[EmailForward](resp.Data, "email_forward")
	return forward, resp, err
}

func (s *EmailForwardsService) Get(ctx context.Context, domain string, id int64) (*EmailForward, *Response, error) {
	path, err := domainPath(domain, "email_forwards", strconv.FormatInt(id, 10))
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.client.get(ctx, path)
	if err != nil {
		return nil, resp, err
	}
	forward, err := unwrapOne[EmailForward](resp.Data, "email_forward")
	return forward, resp, err
}

func (s *EmailForwardsService) Delete(ctx context.Context, domain string, id int64) (bool, *Response, error) {
	path, err := domainPath(domain, "email_forwards", strconv.FormatInt(id, 10))
	if err != nil {
		return false, nil, err
	}
	return s.client.delete(ctx, path)
}

package dnsimple

import (
	"context"
	"net/url"
)

// ServicesService lists the one-click services DNSimple supports.
type ServicesService struct {
	client *Client
}

func (s *ServicesService) List(ctx context.Context) ([]Service, *Response, error) {
	resp, err := s.client.get(ctx, "services")
	if err != nil {
		return nil, resp, err
	}
	services, err := unwrapList[Service](resp.Data, "service")
	return services, resp, err
}

// Get returns a service by id or short name.
func (s *ServicesService) Get(ctx context.Context, service string) (*Service, *Response, error) {
	resp, err := s.client.get(ctx, joinPath("services", service))
	if err != nil {
		return nil, resp, err
	}
	svc, err := unwrapOne[Service](resp.Data, "service")
	return svc, resp, err
}

// Config fetches the published definition of a service, such as the
// settings it takes. The definition lives outside the API and is fetched
// without credentials.
func (s *ServicesService) Config(ctx context.Context, shortName string) (map[string]any, *Response, error) {
	resp, err := s.client.dispatcher.Fetch(ctx, s.client.servicesConfigURL+"/"+url.PathEscape(shortName)+"/config.json")
	if err != nil {
		return nil, resp, err
	}
	cfg, ok := resp.Data.(map[string]any)
	if !ok {
		return nil, resp, ErrUnexpectedResponse.Msg("expected a service definition object")
	}
	return cfg, resp, nil
}

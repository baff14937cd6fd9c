package dnsimple

import (
	"context"
	"strconv"
)

// DomainServicesService applies one-click services to a domain.
type DomainServicesService struct {
	client *Client
}

// Applied lists the services already applied to domain.
func (s *DomainServicesService) Applied(ctx context.Context, domain string) ([]Service, *Response, error) {
	return s.list(ctx, domain, "applied_services")
}

// Available lists the services that can still be applied to domain.
func (s *DomainServicesService) Available(ctx context.Context, domain string) ([]Service, *Response, error) {
	return s.list(ctx, domain, "available_services")
}

func (s *DomainServicesService) list(ctx context.Context, domain, kind string) ([]Service, *Response, error) {
	path, err := domainPath(domain, kind)
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.client.get(ctx, path)
	if err != nil {
		return nil, resp, err
	}
	services, err := unwrapList[Service](resp.Data, "service")
	return services, resp, err
}

// Apply applies a service with optional settings. The result is nil when
// the API does not echo the service back.
func (s *DomainServicesService) Apply(ctx context.Context, domain string, serviceID int64, settings map[string]any) (*Service, *Response, error) {
	path, err := domainPath(domain, "applied_services")
	if err != nil {
		return nil, nil, err
	}
	body := map[string]any{
		"service": map[string]any{"id": serviceID},
	}
	if settings != nil {
		body["settings"] = settings
	}
	resp, err := s.client.post(ctx, path, body)
	if err != nil {
		return nil, resp, err
	}

	list, ok := resp.Data.([]any)
	if !ok || len(list) == 0 {
		return nil, resp, nil
	}
	service, err := unwrapOne[Service](list[0], "service")
	if err != nil {
		return nil, resp, nil
	}
	return service, resp, nil
}

// Remove takes a service off domain.
func (s *DomainServicesService) Remove(ctx context.Context, domain string, serviceID int64) (bool, *Response, error) {
	path, err := domainPath(domain, "applied_services", strconv.FormatInt(serviceID, 10))
	if err != nil {
		return false, nil, err
	}
	return s.client.delete(ctx, path)
}

package dnsimple

import (
	"context"
	"strconv"
)

// RecordsService manages the DNS records of a domain.
type RecordsService struct {
	client *Client
}

func recordPath(domain string, id ...int64) (string, error) {
	if len(id) == 0 {
		return domainPath(domain, "records")
	}
	return domainPath(domain, "records", strconv.FormatInt(id[0], 10))
}

// List returns every record of domain.
func (s *RecordsService) List(ctx context.Context, domain string) ([]Record, *Response, error) {
	path, err := recordPath(domain)
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.client.get(ctx, path)
	if err != nil {
		return nil, resp, err
	}
	records, err := unwrapList[Record](resp.Data, "record")
	return records, resp, err
}

func (s *RecordsService) Get(ctx context.Context, domain string, id int64) (*Record, *Response, error) {
	path, err := recordPath(domain, id)
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.client.get(ctx, path)
	if err != nil {
		return nil, resp, err
	}
	record, err := unwrapOne[Record](resp.Data, "record")
	return record, resp, err
}

// Create adds a record. Name, Type and Content are required.
func (s *RecordsService) Create(ctx context.Context, domain string, in RecordInput) (*Record, *Response, error) {
	path, err := recordPath(domain)
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.client.post(ctx, path, map[string]any{"record": in})
	if err != nil {
		return nil, resp, err
	}
	record, err := unwrapOne[Record](resp.Data, "record")
	return record, resp, err
}

func (s *RecordsService) Update(ctx context.Context, domain string, id int64, in RecordInput) (*Record, *Response, error) {
	path, err := recordPath(domain, id)
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.client.put(ctx, path, map[string]any{"record": in})
	if err != nil {
		return nil, resp, err
	}
	record, err := unwrapOne[Record](resp.Data, "record")
	return record, resp, err
}

// Delete removes a record and reports whether the API confirmed it.
func (s *RecordsService) Delete(ctx context.Context, domain string, id int64) (bool, *Response, error) {
	path, err := recordPath(domain, id)
	if err != nil {
		return false, nil, err
	}
	return s.client.delete(ctx, path)
}

package dnsimple

import (
	"context"
	"strconv"
)

// TemplatesService manages the custom record templates of the account.
// Templates are identified by id or short name.
type TemplatesService struct {
	client *Client
}

// TemplateInput creates a template. Name and ShortName are required.
type TemplateInput struct {
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	Description string `json:"description,omitempty"`
}

// TemplateRecordInput adds a record to a template.
type TemplateRecordInput struct {
	Name     string `json:"name"`
	Type     string `json:"record_type"`
	Content  string `json:"content"`
	TTL      int    `json:"ttl,omitempty"`
	Priority int    `json:"prio,omitempty"`
}

func (s *TemplatesService) List(ctx context.Context) ([]Template, *Response, error) {
	resp, err := s.client.get(ctx, "templates")
	if err != nil {
		return nil, resp, err
	}
	templates, err := unwrapList[Template](resp.Data, "dns_template")
	return templates, resp, err
}

func (s *TemplatesService) Get(ctx context.Context, template string) (*Template, *Response, error) {
	resp, err := s.client.get(ctx, joinPath("templates", template))
	if err != nil {
		return nil, resp, err
	}
	t, err := unwrapOne[Template](resp.Data, "dns_template")
	return t, resp, err
}

func (s *TemplatesService) Create(ctx context.Context, in TemplateInput) (*Template, *Response, error) {
	resp, err := s.client.post(ctx, "templates", map[string]any{"dns_template": in})
	if err != nil {
		return nil, resp, err
	}
	t, err := unwrapOne[Template](resp.Data, "dns_template")
	return t, resp, err
}

func (s *TemplatesService) Delete(ctx context.Context, template string) (bool, *Response, error) {
	return s.client.delete(ctx, joinPath("templates", template))
}

// Apply adds the records of template to domain. The returned domain is nil
// when the API answers without one.
func (s *TemplatesService) Apply(ctx context.Context, domain, template string) (*Domain, *Response, error) {
	path, err := domainPath(domain, "templates", template, "apply")
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.client.post(ctx, path, nil)
	if err != nil {
		return nil, resp, err
	}
	if obj, ok := resp.Data.(map[string]any); !ok || obj["domain"] == nil {
		return nil, resp, nil
	}
	d, err := unwrapOne[Domain](resp.Data, "domain")
	return d, resp, err
}

func (s *TemplatesService) ListRecords(ctx context.Context, template string) ([]TemplateRecord, *Response, error) {
	resp, err := s.client.get(ctx, joinPath("templates", template, "records"))
	if err != nil {
		return nil, resp, err
	}
	records, err := unwrapList[TemplateRecord](resp.Data, "dns_template_record")
	return records, resp, err
}

func (s *TemplatesService) GetRecord(ctx context.Context, template string, id int64) (*TemplateRecord, *Response, error) {
	resp, err := s.client.get(ctx, joinPath("templates", template, "records", strconv.FormatInt(id, 10)))
	if err != nil {
		return nil, resp, err
	}
	record, err := unwrapOne[TemplateRecord](resp.Data, "dns_template_record")
	return record, resp, err
}

func (s *TemplatesService) CreateRecord(ctx context.Context, template string, in TemplateRecordInput) (*TemplateRecord, *Response, error) {
	resp, err := s.client.post(ctx, joinPath("templates", template, "records"), map[string]any{"dns_template_record": in})
	if err != nil {
		return nil, resp, err
	}
	record, err := unwrapOne[TemplateRecord](resp.Data, "dns_template_record")
	return record, resp, err
}

func (s *TemplatesService) DeleteRecord(ctx context.Context, template string, id int64) (bool, *Response, error) {
	return s.client.delete(ctx, joinPath("templates", template, "records", strconv.FormatInt(id, 10)))
}

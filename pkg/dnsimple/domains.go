package dnsimple

import (
	"context"
	"net/http"
	"regexp"

	"github.com/tidwall/sjson"
)

// DomainsService manages the domains of the account.
type DomainsService struct {
	client *Client
}

func (s *DomainsService) List(ctx context.Context) ([]Domain, *Response, error) {
	resp, err := s.client.get(ctx, "domains")
	if err != nil {
		return nil, resp, err
	}
	domains, err := unwrapList[Domain](resp.Data, "domain")
	return domains, resp, err
}

// Names lists only the domain names.
func (s *DomainsService) Names(ctx context.Context) ([]string, *Response, error) {
	domains, resp, err := s.List(ctx)
	if err != nil {
		return nil, resp, err
	}
	names := make([]string, len(domains))
	for i, d := range domains {
		names[i] = d.Name
	}
	return names, resp, nil
}

// FindByRegex lists the domains whose name matches pattern.
func (s *DomainsService) FindByRegex(ctx context.Context, pattern string) ([]Domain, *Response, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, nil, err
	}
	domains, resp, err := s.List(ctx)
	if err != nil {
		return nil, resp, err
	}
	matched := []Domain{}
	for _, d := range domains {
		if re.MatchString(d.Name) {
			matched = append(matched, d)
		}
	}
	return matched, resp, nil
}

func (s *DomainsService) Get(ctx context.Context, name string) (*Domain, *Response, error) {
	return s.domainCall(ctx, http.MethodGet, nil, name)
}

// Create adds a domain to the account without registering it.
func (s *DomainsService) Create(ctx context.Context, name string) (*Domain, *Response, error) {
	ascii, err := asciiName(name)
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.client.post(ctx, "domains", map[string]any{
		"domain": map[string]any{"name": ascii},
	})
	if err != nil {
		return nil, resp, err
	}
	domain, err := unwrapOne[Domain](resp.Data, "domain")
	return domain, resp, err
}

func (s *DomainsService) Delete(ctx context.Context, name string) (bool, *Response, error) {
	path, err := domainPath(name)
	if err != nil {
		return false, nil, err
	}
	return s.client.delete(ctx, path)
}

// ResetToken issues a new domain token.
func (s *DomainsService) ResetToken(ctx context.Context, name string) (*Domain, *Response, error) {
	return s.domainCall(ctx, http.MethodPost, nil, name, "token")
}

// Push moves the domain to another account, identified by its email, with
// contactID as the new registrant.
func (s *DomainsService) Push(ctx context.Context, name, email string, contactID int64) (*Domain, *Response, error) {
	body := map[string]any{
		"push": map[string]any{
			"new_user_email": email,
			"contact_id":     contactID,
		},
	}
	return s.domainCall(ctx, http.MethodPost, body, name, "push")
}

// EnableVanityNameServers turns on vanity name servers. With no servers the
// DNSimple ones are used; otherwise servers maps keys such as "ns1" to
// external host names.
func (s *DomainsService) EnableVanityNameServers(ctx context.Context, name string, servers map[string]string) (*Response, error) {
	path, err := domainPath(name, "vanity_name_servers")
	if err != nil {
		return nil, err
	}

	body := []byte(`{"vanity_nameserver_configuration":{}}`)
	source := "dnsimple"
	if len(servers) > 0 {
		source = "external"
		for k, v := range servers {
			if body, err = sjson.SetBytes(body, "vanity_nameserver_configuration."+escapeKey(k), v); err != nil {
				return nil, err
			}
		}
	}
	if body, err = sjson.SetBytes(body, "vanity_nameserver_configuration.server_source", source); err != nil {
		return nil, err
	}
	return s.client.post(ctx, path, body)
}

func (s *DomainsService) DisableVanityNameServers(ctx context.Context, name string) (*Response, error) {
	path, err := domainPath(name, "vanity_name_servers")
	if err != nil {
		return nil, err
	}
	return s.client.Do(ctx, http.MethodDelete, path)
}

// Zone returns the zone file of the domain.
func (s *DomainsService) Zone(ctx context.Context, name string) (string, *Response, error) {
	path, err := domainPath(name, "zone")
	if err != nil {
		return "", nil, err
	}
	resp, err := s.client.get(ctx, path)
	if err != nil {
		return "", resp, err
	}
	obj, ok := resp.Data.(map[string]any)
	if !ok {
		return "", resp, ErrUnexpectedResponse.Msg("expected an object with zone")
	}
	zone, ok := obj["zone"].(string)
	if !ok {
		return "", resp, ErrUnexpectedResponse.Msg("missing zone")
	}
	return zone, resp, nil
}

// ImportZone loads records from zone file text. The result reports which
// records were imported.
func (s *DomainsService) ImportZone(ctx context.Context, name, zone string) (map[string]any, *Response, error) {
	path, err := domainPath(name, "zone_imports")
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.client.post(ctx, path, map[string]any{
		"zone_import": map[string]any{"zone_data": zone},
	})
	if err != nil {
		return nil, resp, err
	}
	result, err := unwrapOne[map[string]any](resp.Data, "zone_import")
	if err != nil {
		return nil, resp, err
	}
	return *result, resp, nil
}

// ApplyTemplate is Templates.Apply.
func (s *DomainsService) ApplyTemplate(ctx context.Context, name, template string) (*Domain, *Response, error) {
	return s.client.Templates.Apply(ctx, name, template)
}

func (s *DomainsService) domainCall(ctx context.Context, method string, body any, name string, parts ...string) (*Domain, *Response, error) {
	path, err := domainPath(name, parts...)
	if err != nil {
		return nil, nil, err
	}
	var opts []RequestOption
	if body != nil {
		opts = append(opts, WithBody(body))
	}
	resp, err := s.client.Do(ctx, method, path, opts...)
	if err != nil {
		return nil, resp, err
	}
	domain, err := unwrapOne[Domain](resp.Data, "domain")
	return domain, resp, err
}

// escapeKey escapes the sjson path metacharacters in a literal key.
func escapeKey(k string) string {
	out := make([]byte, 0, len(k))
	for i := 0; i < len(k); i++ {
		switch k[i] {
		case '.', '*', '?', '|', '#', '@', '\\':
			out = append(out, '\\')
		}
		out = append(out, k[i])
	}
	return string(out)
}

// MembershipsService manages who else can access a domain.
type MembershipsService struct {
	client *Client
}

func (s *MembershipsService) List(ctx context.Context, domain string) ([]Membership, *Response, error) {
	path, err := domainPath(domain, "memberships")
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.client.get(ctx, path)
	if err != nil {
		return nil, resp, err
	}
	members, err := unwrapList[Membership](resp.Data, "membership")
	return members, resp, err
}

// Add shares domain with the user identified by email.
func (s *MembershipsService) Add(ctx context.Context, domain, email string) (*Membership, *Response, error) {
	path, err := domainPath(domain, "memberships")
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.client.post(ctx, path, map[string]any{
		"membership": map[string]any{"email": email},
	})
	if err != nil {
		return nil, resp, err
	}
	member, err := unwrapOne[Membership](resp.Data, "membership")
	return member, resp, err
}

// Delete removes a member, identified by membership id or email.
func (s *MembershipsService) Delete(ctx context.Context, domain, member string) (bool, *Response, error) {
	path, err := domainPath(domain, "memberships", member)
	if err != nil {
		return false, nil, err
	}
	return s.client.delete(ctx, path)
}

package dnsimple

import (
	"context"
	"net/http"
	"strconv"
)

// RegistrarService checks, registers, transfers and renews domains. The
// registration calls charge the account.
type RegistrarService struct {
	client *Client
}

// Check asks whether name is available. An available name is a success, not
// an error, even though the API answers it with 404.
func (s *RegistrarService) Check(ctx context.Context, name string) (*DomainCheck, *Response, error) {
	path, err := domainPath(name, "check")
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.client.get(ctx, path, WithOperation(OpDomainCheck))
	if err != nil {
		return nil, resp, err
	}
	check, err := plain[DomainCheck](resp.Data)
	return check, resp, err
}

// Register registers name for the registrant contact. extended carries
// the TLD specific attributes and may be nil.
func (s *RegistrarService) Register(ctx context.Context, name string, registrantID int64, extended map[string]any) (*Domain, *Response, error) {
	ascii, err := asciiName(name)
	if err != nil {
		return nil, nil, err
	}
	domain := map[string]any{
		"name":          ascii,
		"registrant_id": registrantID,
	}
	if extended != nil {
		domain["extended_attribute"] = extended
	}
	resp, err := s.client.post(ctx, "domain_registrations", map[string]any{"domain": domain})
	if err != nil {
		return nil, resp, err
	}
	d, err := unwrapOne[Domain](resp.Data, "domain")
	return d, resp, err
}

// TransferOptions are the optional parts of a transfer in.
type TransferOptions struct {
	AuthInfo           string         // authorization code from the current registrar
	ExtendedAttributes map[string]any // TLD specific attributes
}

// Transfer starts a transfer of name into the account.
func (s *RegistrarService) Transfer(ctx context.Context, name string, registrantID int64, opts TransferOptions) (*Response, error) {
	ascii, err := asciiName(name)
	if err != nil {
		return nil, err
	}
	body := map[string]any{
		"domain": map[string]any{
			"name":          ascii,
			"registrant_id": registrantID,
		},
	}
	if opts.ExtendedAttributes != nil {
		body["extended_attribute"] = opts.ExtendedAttributes
	}
	if opts.AuthInfo != "" {
		body["transfer_order"] = map[string]any{"authinfo": opts.AuthInfo}
	}
	return s.client.post(ctx, "domain_transfers", body)
}

// Renew renews the registration of name. A non-nil whoisPrivacy also
// decides whether WHOIS privacy is renewed.
func (s *RegistrarService) Renew(ctx context.Context, name string, whoisPrivacy *bool) (*Domain, *Response, error) {
	ascii, err := asciiName(name)
	if err != nil {
		return nil, nil, err
	}
	domain := map[string]any{"name": ascii}
	if whoisPrivacy != nil {
		domain["renew_whois_privacy"] = "false"
		if *whoisPrivacy {
			domain["renew_whois_privacy"] = "true"
		}
	}
	resp, err := s.client.post(ctx, "domain_renewals", map[string]any{"domain": domain})
	if err != nil {
		return nil, resp, err
	}
	d, err := unwrapOne[Domain](resp.Data, "domain")
	return d, resp, err
}

// SetAutoRenew turns automatic renewal on or off.
func (s *RegistrarService) SetAutoRenew(ctx context.Context, name string, enable bool) (*Domain, *Response, error) {
	path, err := domainPath(name, "auto_renewal")
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.client.Do(ctx, toggleMethod(enable), path)
	if err != nil {
		return nil, resp, err
	}
	d, err := unwrapOne[Domain](resp.Data, "domain")
	return d, resp, err
}

// TransferOut prepares name for a transfer to another registrar.
func (s *RegistrarService) TransferOut(ctx context.Context, name string) (*Response, error) {
	path, err := domainPath(name, "transfer_outs")
	if err != nil {
		return nil, err
	}
	return s.client.post(ctx, path, nil)
}

// SetWhoisPrivacy turns WHOIS privacy on or off.
func (s *RegistrarService) SetWhoisPrivacy(ctx context.Context, name string, enable bool) (*WhoisPrivacy, *Response, error) {
	path, err := domainPath(name, "whois_privacy")
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.client.Do(ctx, toggleMethod(enable), path)
	if err != nil {
		return nil, resp, err
	}
	wp, err := unwrapOne[WhoisPrivacy](resp.Data, "whois_privacy")
	return wp, resp, err
}

// NameServers returns the name servers registered for name at the registry.
func (s *RegistrarService) NameServers(ctx context.Context, name string) ([]string, *Response, error) {
	path, err := domainPath(name, "name_servers")
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.client.get(ctx, path)
	if err != nil {
		return nil, resp, err
	}
	servers, err := plain[[]string](resp.Data)
	if err != nil {
		return nil, resp, err
	}
	return *servers, resp, nil
}

// SetNameServers replaces the registry name servers of name. They are sent
// as ns1, ns2, ... in order.
func (s *RegistrarService) SetNameServers(ctx context.Context, name string, servers []string) (*Response, error) {
	path, err := domainPath(name, "name_servers")
	if err != nil {
		return nil, err
	}
	ns := make(map[string]string, len(servers))
	for i, server := range servers {
		ns[nameServerKey(i)] = server
	}
	return s.client.post(ctx, path, map[string]any{"name_servers": ns})
}

// RegisterNameServer creates a glue record host under domain.
func (s *RegistrarService) RegisterNameServer(ctx context.Context, domain, host, ip string) (*Response, error) {
	path, err := domainPath(domain, "registry_name_servers")
	if err != nil {
		return nil, err
	}
	return s.client.post(ctx, path, map[string]any{
		"name_server": map[string]any{"name": host, "ip": ip},
	})
}

func (s *RegistrarService) DeregisterNameServer(ctx context.Context, domain, host string) (*Response, error) {
	path, err := domainPath(domain, "registry_name_servers", host)
	if err != nil {
		return nil, err
	}
	return s.client.Do(ctx, http.MethodDelete, path)
}

func toggleMethod(enable bool) string {
	if enable {
		return http.MethodPost
	}
	return http.MethodDelete
}

func nameServerKey(i int) string {
	return "ns" + strconv.Itoa(i+1)
}

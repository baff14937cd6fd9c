package dnsimple

import (
	"time"
)

// Domain is a zone in the account.
type Domain struct {
	ID             int64      `json:"id,omitempty"`
	UserID         int64      `json:"user_id,omitempty"`
	RegistrantID   int64      `json:"registrant_id,omitempty"`
	Name           string     `json:"name"`
	UnicodeName    string     `json:"unicode_name,omitempty"`
	Token          string     `json:"token,omitempty"`
	State          string     `json:"state,omitempty"`
	Language       string     `json:"language,omitempty"`
	Lockable       bool       `json:"lockable,omitempty"`
	AutoRenew      bool       `json:"auto_renew,omitempty"`
	WhoisProtected bool       `json:"whois_protected,omitempty"`
	RecordCount    int        `json:"record_count,omitempty"`
	ServiceCount   int        `json:"service_count,omitempty"`
	ExpiresOn      string     `json:"expires_on,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// Record is a DNS record of a domain. An empty Name is the zone apex.
type Record struct {
	ID           int64      `json:"id,omitempty"`
	DomainID     int64      `json:"domain_id,omitempty"`
	ParentID     int64      `json:"parent_id,omitempty"`
	Name         string     `json:"name"`
	Type         string     `json:"record_type"`
	Content      string     `json:"content"`
	TTL          int        `json:"ttl,omitempty"`
	Priority     int        `json:"prio,omitempty"`
	SystemRecord bool       `json:"system_record,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// RecordInput is the writable part of a Record.
type RecordInput struct {
	Name     string `json:"name"`
	Type     string `json:"record_type,omitempty"`
	Content  string `json:"content"`
	TTL      int    `json:"ttl,omitempty"`
	Priority int    `json:"prio,omitempty"`
}

type Membership struct {
	ID        int64      `json:"id,omitempty"`
	DomainID  int64      `json:"domain_id,omitempty"`
	UserID    int64      `json:"user_id,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// DomainCheck is the registrar's answer to an availability check.
type DomainCheck struct {
	Name                 string `json:"name"`
	Status               string `json:"status"`
	Price                string `json:"price,omitempty"`
	Currency             string `json:"currency,omitempty"`
	CurrencySymbol       string `json:"currency_symbol,omitempty"`
	MinimumNumberOfYears int    `json:"minimum_number_of_years,omitempty"`
}

// Available reports whether the name can be registered.
func (c DomainCheck) Available() bool {
	return c.Status == "available"
}

type WhoisPrivacy struct {
	ID        int64      `json:"id,omitempty"`
	DomainID  int64      `json:"domain_id,omitempty"`
	Enabled   bool       `json:"enabled"`
	ExpiresOn string     `json:"expires_on,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Service is a one-click service that can be applied to a domain.
type Service struct {
	ID            int64  `json:"id,omitempty"`
	Name          string `json:"name"`
	ShortName     string `json:"short_name,omitempty"`
	Description   string `json:"description,omitempty"`
	RequiresSetup bool   `json:"requires_setup,omitempty"`
}

type EmailForward struct {
	ID        int64      `json:"id,omitempty"`
	DomainID  int64      `json:"domain_id,omitempty"`
	From      string     `json:"from"`
	To        string     `json:"to"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Certificate is an SSL certificate order for a host of a domain.
type Certificate struct {
	ID             int64      `json:"id,omitempty"`
	DomainID       int64      `json:"domain_id,omitempty"`
	ContactID      int64      `json:"contact_id,omitempty"`
	Name           string     `json:"name"`
	State          string     `json:"state,omitempty"`
	CSR            string     `json:"csr,omitempty"`
	SSLCertificate string     `json:"ssl_certificate,omitempty"`
	PrivateKey     string     `json:"private_key,omitempty"`
	ApproverEmail  string     `json:"approver_email,omitempty"`
	ExpiresOn      string     `json:"expires_on,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// Template is a reusable set of records.
type Template struct {
	ID          int64      `json:"id,omitempty"`
	Name        string     `json:"name"`
	ShortName   string     `json:"short_name"`
	Description string     `json:"description,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type TemplateRecord struct {
	ID         int64      `json:"id,omitempty"`
	TemplateID int64      `json:"dns_template_id,omitempty"`
	Name       string     `json:"name"`
	Type       string     `json:"record_type"`
	Content    string     `json:"content"`
	TTL        int        `json:"ttl,omitempty"`
	Priority   int        `json:"prio,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// Contact is a registrant or administrative contact.
type Contact struct {
	ID               int64      `json:"id,omitempty"`
	UserID           int64      `json:"user_id,omitempty"`
	Label            string     `json:"label,omitempty"`
	FirstName        string     `json:"first_name,omitempty"`
	LastName         string     `json:"last_name,omitempty"`
	OrganizationName string     `json:"organization_name,omitempty"`
	JobTitle         string     `json:"job_title,omitempty"`
	Address1         string     `json:"address1,omitempty"`
	Address2         string     `json:"address2,omitempty"`
	City             string     `json:"city,omitempty"`
	StateProvince    string     `json:"state_province,omitempty"`
	PostalCode       string     `json:"postal_code,omitempty"`
	Country          string     `json:"country,omitempty"`
	EmailAddress     string     `json:"email_address,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	Fax              string     `json:"fax,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

type Subscription struct {
	ID        int64      `json:"id,omitempty"`
	Plan      string     `json:"plan,omitempty"`
	State     string     `json:"state,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Price is the registration, transfer and renewal price of a TLD.
type Price struct {
	TLD                 string `json:"tld"`
	MinimumRegistration int    `json:"minimum_registration,omitempty"`
	RegistrationPrice   string `json:"registration_price,omitempty"`
	TransferPrice       string `json:"transfer_price,omitempty"`
	RenewalPrice        string `json:"renewal_price,omitempty"`
}

type User struct {
	ID        int64      `json:"id,omitempty"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// UserInput creates a new user.
type UserInput struct {
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// ExtendedAttribute is an extra registration field some TLDs require.
type ExtendedAttribute struct {
	Name        string                    `json:"name"`
	Label       string                    `json:"label,omitempty"`
	Description string                    `json:"description,omitempty"`
	Required    bool                      `json:"required"`
	Options     []ExtendedAttributeOption `json:"options,omitempty"`
}

type ExtendedAttributeOption struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

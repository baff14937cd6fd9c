package dnsimple

import (
	"context"
	"strconv"
)

// ContactsService manages registrant contacts.
type ContactsService struct {
	client *Client
}

func contactPath(id int64) string {
	return joinPath("contacts", strconv.FormatInt(id, 10))
}

func (s *ContactsService) List(ctx context.Context) ([]Contact, *Response, error) {
	resp, err := s.client.get(ctx, "contacts")
	if err != nil {
		return nil, resp, err
	}
	contacts, err := unwrapList[Contact](resp.Data, "contact")
	return contacts, resp, err
}

func (s *ContactsService) Get(ctx context.Context, id int64) (*Contact, *Response, error) {
	resp, err := s.client.get(ctx, contactPath(id))
	if err != nil {
		return nil, resp, err
	}
	c, err := unwrapOne[Contact](resp.Data, "contact")
	return c, resp, err
}

// Create adds a contact. ID and timestamps of in are ignored by the API.
func (s *ContactsService) Create(ctx context.Context, in Contact) (*Contact, *Response, error) {
	resp, err := s.client.post(ctx, "contacts", map[string]any{"contact": in})
	if err != nil {
		return nil, resp, err
	}
	c, err := unwrapOne[Contact](resp.Data, "contact")
	return c, resp, err
}

// Update changes the non-empty fields of in on contact id.
func (s *ContactsService) Update(ctx context.Context, id int64, in Contact) (*Contact, *Response, error) {
	resp, err := s.client.put(ctx, contactPath(id), map[string]any{"contact": in})
	if err != nil {
		return nil, resp, err
	}
	c, err := unwrapOne[Contact](resp.Data, "contact")
	return c, resp, err
}

func (s *ContactsService) Delete(ctx context.Context, id int64) (bool, *Response, error) {
	return s.client.delete(ctx, contactPath(id))
}

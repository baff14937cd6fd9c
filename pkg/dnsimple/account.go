package dnsimple

import (
	"context"
)

// AccountService covers the subscription, prices and users of the account.
type AccountService struct {
	client *Client
}

func (s *AccountService) Subscription(ctx context.Context) (*Subscription, *Response, error) {
	resp, err := s.client.get(ctx, "subscription")
	if err != nil {
		return nil, resp, err
	}
	sub, err := unwrapOne[Subscription](resp.Data, "subscription")
	return sub, resp, err
}

// UpdateSubscription changes the subscription, for example the plan.
func (s *AccountService) UpdateSubscription(ctx context.Context, fields map[string]any) (*Subscription, *Response, error) {
	resp, err := s.client.put(ctx, "subscription", map[string]any{"subscription": fields})
	if err != nil {
		return nil, resp, err
	}
	sub, err := unwrapOne[Subscription](resp.Data, "subscription")
	return sub, resp, err
}

// Prices lists the registration prices of every supported TLD.
func (s *AccountService) Prices(ctx context.Context) ([]Price, *Response, error) {
	resp, err := s.client.get(ctx, "prices")
	if err != nil {
		return nil, resp, err
	}
	prices, err := unwrapList[Price](resp.Data, "price")
	return prices, resp, err
}

// CreateUser signs up a new user.
func (s *AccountService) CreateUser(ctx context.Context, in UserInput) (*User, *Response, error) {
	resp, err := s.client.post(ctx, "users", map[string]any{"user": in})
	if err != nil {
		return nil, resp, err
	}
	u, err := unwrapOne[User](resp.Data, "user")
	return u, resp, err
}

// ExtendedAttributes lists the extra registration fields of tld.
func (s *AccountService) ExtendedAttributes(ctx context.Context, tld string) ([]ExtendedAttribute, *Response, error) {
	resp, err := s.client.get(ctx, joinPath("extended_attributes", tld))
	if err != nil {
		return nil, resp, err
	}
	attrs, err := plain[[]ExtendedAttribute](resp.Data)
	if err != nil {
		return nil, resp, err
	}
	return *attrs, resp, nil
}

// Package provider implements the libdns interfaces on top of the DNSimple
// client, so the API can be driven by ACME solvers and other libdns users.
package provider

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/libdns/libdns"
	"github.com/tansive/dnsimple-go/internal/common/apperrors"
	"github.com/tansive/dnsimple-go/internal/common/logtrace"
	"github.com/tansive/dnsimple-go/pkg/dnsimple"
)

const (
	DefaultAttempts = 3
	defaultDelay    = 500 * time.Millisecond
)

var (
	ErrProvider          = apperrors.New("dnsimple provider error")
	ErrRecordNotFound    = ErrProvider.New("record not found")
	ErrRecordUnsupported = ErrProvider.New("record type not supported")
)

// Provider manages the records of DNSimple zones through libdns.
type Provider struct {
	Client *dnsimple.Client

	// Attempts is how many times a call is tried when it fails with a
	// retryable error. Zero means DefaultAttempts.
	Attempts uint
	// Delay is the initial back-off between attempts.
	Delay time.Duration

	mutex sync.Mutex
}

// New returns a Provider for client.
func New(client *dnsimple.Client) *Provider {
	return &Provider{Client: client}
}

// GetRecords lists all the records in zone.
func (p *Provider) GetRecords(ctx context.Context, zone string) ([]libdns.Record, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	records, err := p.list(ctx, zone)
	if err != nil {
		return nil, err
	}

	out := make([]libdns.Record, 0, len(records))
	for _, rec := range records {
		out = append(out, toLibdns(rec))
	}
	return out, nil
}

// AppendRecords creates the records in zone and returns them as created.
func (p *Provider) AppendRecords(ctx context.Context, zone string, records []libdns.Record) ([]libdns.Record, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	created := make([]libdns.Record, 0, len(records))
	for _, rec := range records {
		in, err := fromLibdns(rec)
		if err != nil {
			return created, err
		}
		out, err := p.create(ctx, zone, in)
		if err != nil {
			return created, err
		}
		created = append(created, toLibdns(*out))
	}
	return created, nil
}

type rrKey struct {
	name, typ string
}

// SetRecords makes each (name, type) pair in records hold exactly the
// values given for it. Existing records of the pair are updated in place,
// missing values are created, and surplus records are deleted.
func (p *Provider) SetRecords(ctx context.Context, zone string, records []libdns.Record) ([]libdns.Record, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	var order []rrKey
	groups := make(map[rrKey][]dnsimple.RecordInput)
	for _, rec := range records {
		in, err := fromLibdns(rec)
		if err != nil {
			return nil, err
		}
		key := rrKey{name: in.Name, typ: in.Type}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], in)
	}

	existing, err := p.list(ctx, zone)
	if err != nil {
		return nil, err
	}

	set := make([]libdns.Record, 0, len(records))
	for _, key := range order {
		inputs := groups[key]
		matches := matching(existing, key.name, key.typ)

		for i, in := range inputs {
			var out *dnsimple.Record
			if i < len(matches) {
				id := matches[i].ID
				err = p.retry(ctx, func() error {
					var err error
					out, _, err = p.Client.Records.Update(ctx, zone, id, in)
					return err
				})
			} else {
				out, err = p.create(ctx, zone, in)
			}
			if err != nil {
				return set, err
			}
			set = append(set, toLibdns(*out))
		}

		for i := len(inputs); i < len(matches); i++ {
			if err := p.delete(ctx, zone, matches[i].ID); err != nil {
				return set, err
			}
		}
	}
	return set, nil
}

// DeleteRecords removes the records from zone. A record with empty Data
// matches every value of its name and type. Records that do not exist are
// skipped.
func (p *Provider) DeleteRecords(ctx context.Context, zone string, records []libdns.Record) ([]libdns.Record, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	existing, err := p.list(ctx, zone)
	if err != nil {
		return nil, err
	}

	deleted := make([]libdns.Record, 0, len(records))
	for _, rec := range records {
		in, err := fromLibdns(rec)
		if err != nil {
			return deleted, err
		}
		for _, match := range matching(existing, in.Name, in.Type) {
			if rec.RR().Data != "" && (match.Content != in.Content || match.Priority != in.Priority) {
				continue
			}
			if err := p.delete(ctx, zone, match.ID); err != nil {
				return deleted, err
			}
			deleted = append(deleted, toLibdns(match))
		}
	}
	return deleted, nil
}

func (p *Provider) list(ctx context.Context, zone string) ([]dnsimple.Record, error) {
	var records []dnsimple.Record
	err := p.retry(ctx, func() error {
		var err error
		records, _, err = p.Client.Records.List(ctx, zone)
		return err
	})
	return records, err
}

// create adds in to zone. A create is not idempotent, so once an attempt
// has failed the zone is listed before the next one and an identical record
// found there is taken as the one created.
func (p *Provider) create(ctx context.Context, zone string, in dnsimple.RecordInput) (*dnsimple.Record, error) {
	var out *dnsimple.Record
	attempted := false
	err := p.retry(ctx, func() error {
		if attempted {
			records, _, err := p.Client.Records.List(ctx, zone)
			if err != nil {
				return err
			}
			if rec, ok := findRecord(records, in); ok {
				out = &rec
				return nil
			}
		}
		attempted = true
		var err error
		out, _, err = p.Client.Records.Create(ctx, zone, in)
		return err
	})
	return out, err
}

func (p *Provider) delete(ctx context.Context, zone string, id int64) error {
	return p.retry(ctx, func() error {
		ok, _, err := p.Client.Records.Delete(ctx, zone, id)
		if err != nil {
			return err
		}
		if !ok {
			return retry.Unrecoverable(ErrRecordNotFound.Msg("record " + strconv.FormatInt(id, 10) + " was not deleted"))
		}
		return nil
	})
}

// retry runs fn until it succeeds, fails with a non-retryable error, or the
// attempts run out.
func (p *Provider) retry(ctx context.Context, fn func() error) error {
	attempts := p.Attempts
	if attempts == 0 {
		attempts = DefaultAttempts
	}
	delay := p.Delay
	if delay == 0 {
		delay = defaultDelay
	}

	return retry.Do(
		func() error {
			err := fn()
			if err != nil && !dnsimple.IsRetryable(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger := logtrace.Logger(ctx)
			logger.Debug().Uint("attempt", n+1).Err(err).Msg("retrying dnsimple call")
		}),
	)
}

func matching(records []dnsimple.Record, name, typ string) []dnsimple.Record {
	var out []dnsimple.Record
	for _, rec := range records {
		if rec.Name == name && strings.EqualFold(rec.Type, typ) {
			out = append(out, rec)
		}
	}
	return out
}

func findRecord(records []dnsimple.Record, in dnsimple.RecordInput) (dnsimple.Record, bool) {
	for _, rec := range matching(records, in.Name, in.Type) {
		if rec.Content == in.Content && rec.Priority == in.Priority {
			return rec, true
		}
	}
	return dnsimple.Record{}, false
}

// Interface guards
var (
	_ libdns.RecordGetter   = (*Provider)(nil)
	_ libdns.RecordAppender = (*Provider)(nil)
	_ libdns.RecordSetter   = (*Provider)(nil)
	_ libdns.RecordDeleter  = (*Provider)(nil)
)

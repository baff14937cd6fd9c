package dnsimple

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainPath(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		parts  []string
		want   string
	}{
		{"plain", "example.com", nil, "domains/example.com"},
		{"trailing dot", "example.com.", []string{"records"}, "domains/example.com/records"},
		{"idn", "bücher.example", []string{"check"}, "domains/xn--bcher-kva.example/check"},
		{"escaped segment", "example.com", []string{"memberships", "a b@example.com"}, "domains/example.com/memberships/a%20b@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domainPath(tt.domain, tt.parts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := domainPath("  ")
	assert.ErrorIs(t, err, ErrInvalidDomainName)
}

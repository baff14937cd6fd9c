package logtrace

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tansive/dnsimple-go/internal/common/uuid"
)

// Logger returns the logger attached to ctx with zerolog's WithContext, or
// the one set by InitLogger when ctx carries none.
func Logger(ctx context.Context) zerolog.Logger {
	if ctx != nil {
		if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
			return *l
		}
	}
	return base
}

// CallLogger returns a logger for a single API call along with the call id
// it is tagged with.
func CallLogger(ctx context.Context, method, path string) (zerolog.Logger, string) {
	callID := uuid.NewCallID().String()
	return Logger(ctx).With().
		Str("call_id", callID).
		Str("method", method).
		Str("path", path).
		Logger(), callID
}

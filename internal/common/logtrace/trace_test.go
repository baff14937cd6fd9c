package logtrace

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestCallLoggerUsesGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(&buf, zerolog.DebugLevel)

	logger, callID := CallLogger(context.Background(), "GET", "prices")
	logger.Debug().Msg("dispatch")

	_, err := uuid.Parse(callID)
	require.NoError(t, err)

	line := buf.Bytes()
	assert.Equal(t, callID, gjson.GetBytes(line, "call_id").String())
	assert.Equal(t, "GET", gjson.GetBytes(line, "method").String())
	assert.Equal(t, "prices", gjson.GetBytes(line, "path").String())
	assert.True(t, gjson.GetBytes(line, "time").Exists())
}

func TestCallLoggerPrefersContextLogger(t *testing.T) {
	var global, scoped bytes.Buffer
	InitLoggerWithWriter(&global, zerolog.DebugLevel)

	ctxLogger := zerolog.New(&scoped).With().Str("component", "provider").Logger()
	ctx := ctxLogger.WithContext(context.Background())

	logger, _ := CallLogger(ctx, "DELETE", "domains/example.com")
	logger.Info().Msg("done")

	assert.Empty(t, global.String())
	assert.Equal(t, "provider", gjson.Get(scoped.String(), "component").String())
}

func TestCallIDsAreUnique(t *testing.T) {
	_, a := CallLogger(context.Background(), "GET", "domains")
	_, b := CallLogger(context.Background(), "GET", "domains")
	assert.NotEqual(t, a, b)
}

func TestLoggerFallsBackToInitLogger(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(&buf, zerolog.DebugLevel)

	logger := Logger(context.Background())
	logger.Debug().Msg("retrying")
	assert.Equal(t, "retrying", gjson.Get(buf.String(), "message").String())
}

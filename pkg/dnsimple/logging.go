package dnsimple

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/tansive/dnsimple-go/internal/common/logtrace"
)

// InitLogger sends the client's logs to w. Each call logs at debug level
// when it is dispatched and when it completes, with its status, request id,
// runtime and error kind; credentials are never logged. Without InitLogger
// the client only logs through a logger attached to the call's context
// with zerolog's WithContext.
func InitLogger(w io.Writer, level zerolog.Level) {
	logtrace.InitLoggerWithWriter(w, level)
}

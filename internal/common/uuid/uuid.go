// Package uuid provides the identifiers attached to outbound API calls.
// It wraps github.com/google/uuid and prefers time-ordered UUIDv7 values so
// that call ids sort in the order the calls were issued.
package uuid

import (
	"github.com/google/uuid"
)

// UUID is an alias of github.com/google/uuid.UUID.
type UUID = uuid.UUID

// NewCallID returns a UUIDv7 for a new call. If the v7 generator fails the
// call still gets a random v4 id; a call is never left without an id.
func NewCallID() UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

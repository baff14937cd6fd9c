package httpclient

import (
	"net/http"
	"slices"
)

// Operation names a logical API operation. Only operations with entries in
// the exception table need one.
type Operation string

const (
	// OpDomainCheck is the registrar availability check. A 404 there means
	// the name is available.
	OpDomainCheck Operation = "domains.check"
)

// successStatuses lists, per operation, the >= 300 statuses that count as
// success.
var successStatuses = map[Operation][]int{
	OpDomainCheck: {http.StatusNotFound},
}

func isSuccessException(op Operation, status int) bool {
	if op == "" {
		return false
	}
	return slices.Contains(successStatuses[op], status)
}

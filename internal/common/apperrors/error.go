// Package apperrors provides chained errors that keep a link to the
// sentinel they were derived from. The client uses them for its error kinds
// and for configuration failures, so callers can match with errors.Is at any
// depth of wrapping.
package apperrors

// Error is an error that can be derived from and extended. All methods
// return a new Error and leave the receiver untouched.
type Error interface {
	error
	Unwrap() error // support for errors.Is / errors.As

	New(msg string) Error                  // new message, same lineage
	Msg(msg string) Error                  // new message, wraps the receiver
	MsgErr(msg string, err ...error) Error // new message, wraps the receiver and errs
	Err(err ...error) Error                // same message, wraps errs
	SetStatusCode(int) Error               // copy carrying an HTTP status code
	StatusCode() int                       // HTTP status code, 0 when unset
	ErrorAll() string                      // message followed by every wrapped error
	UnwrapAll() []error                    // wrapped errors in insertion order
}

package gallery

import "fmt"

// RemoteFetchError is returned when the contents API could not be read.
// StatusCode is the HTTP status of a non-2xx reply, or 0 when the request
// never produced a response (Err then holds the transport failure).
type RemoteFetchError struct {
	Path       string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e RemoteFetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("github contents %q: status %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("github contents %q: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying transport error, if any.
func (e RemoteFetchError) Unwrap() error {
	return e.Err
}

package govalorant

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

var (
	// ErrUnknownLanguage is returned when a Language value has no wire code.
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrMissingData is wrapped by a DecodeError when a success envelope carries no data.
	ErrMissingData = errors.New("envelope has no data")
)

// TransportError means the request could not be sent or the response could not be read.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError means a response arrived but did not match the expected envelope or payload.
type DecodeError struct {
	URL  string
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// APIError is a well-formed response whose status is not a success.
type APIError struct {
	URL     string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("%s: status %d: %s", e.URL, e.Status, msg)
}

// IsNotFound reports whether err is an APIError for a resource upstream does not know.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

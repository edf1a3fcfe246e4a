package domain

import "fmt"

// ErrorKind classifies search failures for the error-display path
type ErrorKind int

const (
	// KindServerError covers non-success responses and malformed payloads
	KindServerError ErrorKind = iota
	// KindSessionExpired means a redirect to a login-like endpoint was detected
	KindSessionExpired
)

// SearchError is the failure a search function surfaces to the dispatcher
type SearchError struct {
	Kind    ErrorKind
	Message string
	Err     error // underlying cause, may be nil
}

func (e *SearchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *SearchError) Unwrap() error { return e.Err }

// NewSessionExpiredError reports a detected login redirect
func NewSessionExpiredError() *SearchError {
	return &SearchError{
		Kind:    KindSessionExpired,
		Message: "you seem to be logged out, please sign in again",
	}
}

// NewServerError reports any other failed or malformed response
func NewServerError(err error) *SearchError {
	return &SearchError{
		Kind:    KindServerError,
		Message: "the server had a problem answering the search",
		Err:     err,
	}
}

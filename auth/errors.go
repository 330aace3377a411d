package auth

import (
	"errors"
	"fmt"
)

// ErrAuthentication is the sentinel all local token errors match via
// errors.Is. It covers structural problems with the token string and
// undecodable claim segments; it never represents a network failure.
var ErrAuthentication = errors.New("authentication error")

// authenticationError wraps a specific token problem with the concrete
// sentinel ErrAuthentication. We do not expose this publicly because
// the interface methods of Is and Unwrap give the caller all they need.
type authenticationError struct {
	msg   string
	cause error
}

// Is allows the error to support equality to ErrAuthentication.
func (e *authenticationError) Is(target error) bool {
	return target == ErrAuthentication
}

// Error returns a string representation of the error.
func (e *authenticationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s", ErrAuthentication, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", ErrAuthentication, e.msg)
}

// Unwrap allows the error to support equality to the underlying cause
// and not just ErrAuthentication.
func (e *authenticationError) Unwrap() error {
	return e.cause
}

func newAuthenticationError(msg string, cause error) error {
	return &authenticationError{msg: msg, cause: cause}
}

package session

import (
	"errors"

	"github.com/physiofit/clinic/internal/client/client"
)

// ErrMalformedToken means an access token could not be decoded into claims.
var ErrMalformedToken = errors.New("malformed access token")

// User-facing login failure messages.
const (
	MsgInvalidCredentials = "Invalid credentials!"
	MsgServerUnavailable  = "Server unavailable, please try again later."
	MsgStorageFailure     = "Could not save the session on this device."
)

// LoginError is returned by Store.Login. Message is safe to show to the user;
// Err keeps the underlying cause for logs and errors.Is.
type LoginError struct {
	Message string
	Err     error
}

func (e *LoginError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

func issuerFailure(err error) *LoginError {
	if errors.Is(err, client.ErrUnavailable) {
		return &LoginError{Message: MsgServerUnavailable, Err: err}
	}
	return &LoginError{Message: MsgInvalidCredentials, Err: err}
}

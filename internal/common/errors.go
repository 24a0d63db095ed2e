// Package common defines shared constants and sentinel errors used across
// the eventdesk client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Transport / resource-client errors.
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	// Auth workflow errors.
	ErrEmailNotFound      = errors.New("email not found")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrRegistrationFailed = errors.New("registration failed")

	// Event workflow errors.
	ErrEventFull = errors.New("event full")
)

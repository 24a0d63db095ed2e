// Package common contains shared constants and sentinel errors used across
// eventdesk components.
package common

// Durable session storage keys. The two keys are independent: they are
// written and cleared separately, mirroring the localStorage layout of the
// web front end this client replaces.
const (
	SessionKeyCurrentUser = "currentUser"
	SessionKeyToken       = "token"
)

// AuthorizationHeaderName is the HTTP header used to carry the bearer token
// on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName carries a per-request correlation id.
const RequestIDHeaderName = "X-Request-Id"

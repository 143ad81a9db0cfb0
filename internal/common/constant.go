// Package common contains shared constants, sentinel errors and small helpers
// used across the clinic client packages.
package common

const (
	// AuthorizationHeader carries the bearer access token on API requests.
	AuthorizationHeader = "Authorization"

	// BearerScheme is the authorization scheme expected by the backend.
	BearerScheme = "Bearer"

	// RequestIDHeader carries a per-request identifier for log correlation.
	RequestIDHeader = "X-Request-ID"

	// CredentialStorageKey is the durable storage entry holding the serialized
	// credential pair. Its absence means the user is logged out.
	CredentialStorageKey = "access_token"
)

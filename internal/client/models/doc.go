// Package models holds the client's domain types: roles, the credential pair,
// identity claims decoded from access tokens, and request payloads.
package models

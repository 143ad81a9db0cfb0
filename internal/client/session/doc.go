// Package session is the client's single source of truth for "who is logged
// in". It owns the credential pair in memory, mirrors it to durable storage
// under common.CredentialStorageKey, exposes the decoded identity claims, and
// drives post-login and post-logout navigation.
//
// Claims are decoded without signature verification: the client holds no
// signing key and relies on the backend to reject forged tokens. Expiry is not
// checked locally.
package session

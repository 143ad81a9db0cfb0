package models

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
)

// UserID is the backend user identifier. The token carries it as either a
// JSON number or a string; both decode to its textual form.
type UserID string

func (id *UserID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = UserID(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(b), 64); err != nil {
		return fmt.Errorf("user_id: unexpected value %s", b)
	}
	*id = UserID(b)
	return nil
}

// Claims is the identity carried by an access token.
type Claims struct {
	UserID    UserID `json:"user_id"`
	RoleName  string `json:"role,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Role returns the normalised role; RoleUnknown when the claim is missing or
// not one of the known names.
func (c *Claims) Role() Role {
	return ParseRole(c.RoleName)
}

// DisplayName is "First Last", falling back to the email address.
func (c *Claims) DisplayName() string {
	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if name != "" {
		return name
	}
	return c.Email
}

// Expiry returns the token expiry, or the zero time when it has none.
func (c *Claims) Expiry() time.Time {
	if c.RegisteredClaims.ExpiresAt == nil {
		return time.Time{}
	}
	return c.RegisteredClaims.ExpiresAt.Time
}

// Clone returns a deep copy; the registered time and audience fields are not
// shared with c.
func (c *Claims) Clone() *Claims {
	out := *c
	out.ExpiresAt = cloneTime(c.ExpiresAt)
	out.IssuedAt = cloneTime(c.IssuedAt)
	out.NotBefore = cloneTime(c.NotBefore)
	out.Audience = slices.Clone(c.Audience)
	return &out
}

func cloneTime(t *jwt.NumericDate) *jwt.NumericDate {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

package models

import (
	"slices"
	"strings"
)

// Role is the closed set of user roles known to the clinic. The zero value
// RoleUnknown stands for a missing or unrecognised role and never matches a
// policy entry.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleAdmin
	RolePhysio
	RoleReceptionist
	RolePatient
)

var roleNames = [...]string{
	RoleUnknown:      "UNKNOWN",
	RoleAdmin:        "ADMIN",
	RolePhysio:       "PHYSIO",
	RoleReceptionist: "RECEPTIONIST",
	RolePatient:      "PATIENT",
}

// AllRoles lists every known role, RoleUnknown excluded.
func AllRoles() []Role {
	return []Role{RoleAdmin, RolePhysio, RoleReceptionist, RolePatient}
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return roleNames[RoleUnknown]
}

// IsStaff reports whether r is one of the clinic staff roles.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RolePhysio || r == RoleReceptionist
}

// ParseRole maps a role name to a Role, ignoring case. Whitespace is
// significant.
func ParseRole(s string) Role {
	name := strings.ToUpper(s)
	for _, r := range AllRoles() {
		if roleNames[r] == name {
			return r
		}
	}
	return RoleUnknown
}

// RoleSet is an immutable set of roles.
type RoleSet struct {
	m map[Role]struct{}
}

// NewRoleSet builds a set from roles; duplicates collapse.
func NewRoleSet(roles ...Role) RoleSet {
	m := make(map[Role]struct{}, len(roles))
	for _, r := range roles {
		m[r] = struct{}{}
	}
	return RoleSet{m: m}
}

func (s RoleSet) Contains(r Role) bool {
	_, ok := s.m[r]
	return ok
}

func (s RoleSet) Len() int {
	return len(s.m)
}

// Roles returns the members in declaration order.
func (s RoleSet) Roles() []Role {
	out := make([]Role, 0, len(s.m))
	for r := range s.m {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

func (s RoleSet) String() string {
	names := make([]string, 0, len(s.m))
	for _, r := range s.Roles() {
		names = append(names, r.String())
	}
	return strings.Join(names, ",")
}

package access

import (
	"github.com/physiofit/clinic/internal/client/models"
	"github.com/physiofit/clinic/internal/common"
)

// State is the outcome of an access check.
type State int

const (
	Unauthenticated State = iota
	Denied
	Allowed
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Denied:
		return "denied"
	case Allowed:
		return "allowed"
	default:
		return "invalid"
	}
}

// Decision is what the gate tells the caller to do. Redirect is set for
// Unauthenticated and Denied and empty for Allowed.
type Decision struct {
	State    State
	Redirect string
}

// Evaluate applies the access rule: no user goes to the login page, a user
// whose role is not in a non-empty required set goes home, anyone else may
// proceed. The role is compared after normalisation, so "admin" matches ADMIN.
func Evaluate(user *models.Claims, required models.RoleSet) Decision {
	if user == nil {
		return Decision{State: Unauthenticated, Redirect: common.PathLogin}
	}
	if required.Len() > 0 && !required.Contains(user.Role()) {
		return Decision{State: Denied, Redirect: common.PathHome}
	}
	return Decision{State: Allowed}
}

// SessionReader is the read side of the session store.
type SessionReader interface {
	CurrentUser() (*models.Claims, bool)
}

// Gate guards navigation with a Policy. It performs no I/O and never changes
// the session.
type Gate struct {
	policy  Policy
	session SessionReader
}

func NewGate(policy Policy, session SessionReader) *Gate {
	return &Gate{policy: policy, session: session}
}

// Check decides whether the current user may open path. Public paths are
// allowed without looking at the session.
func (g *Gate) Check(path string) Decision {
	required, protected := g.policy.Required(path)
	if !protected {
		return Decision{State: Allowed}
	}
	user, ok := g.session.CurrentUser()
	if !ok {
		user = nil
	}
	return Evaluate(user, required)
}

// Policy returns the gate's route policy.
func (g *Gate) Policy() Policy {
	return g.policy
}

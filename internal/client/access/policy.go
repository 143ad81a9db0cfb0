package access

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/physiofit/clinic/internal/client/models"
	"github.com/physiofit/clinic/internal/common"
)

// Protected application paths, besides common.PathDashboard.
const (
	PathCalendar  = "/calendar"
	PathPatients  = "/patients"
	PathAnalytics = "/analytics"
	PathServices  = "/services"
	PathInventory = "/inventory"
	PathBilling   = "/billing"
	PathUsers     = "/users"
	PathProfile   = "/profile"
)

// Policy maps a protected path to the roles allowed to open it. A path with no
// entry is public. An entry with an empty set admits any logged-in user.
type Policy map[string]models.RoleSet

// DefaultPolicy returns the clinic's route policy.
func DefaultPolicy() Policy {
	staff := models.NewRoleSet(models.RoleAdmin, models.RolePhysio, models.RoleReceptionist)
	frontDesk := models.NewRoleSet(models.RoleAdmin, models.RoleReceptionist)

	return Policy{
		common.PathDashboard: staff,
		PathCalendar:         staff,
		PathPatients:         staff,
		PathAnalytics:        staff,
		PathServices:         frontDesk,
		PathInventory:        frontDesk,
		PathBilling:          frontDesk,
		PathUsers:            models.NewRoleSet(models.RoleAdmin),
		PathProfile:          models.NewRoleSet(models.RolePatient),
	}
}

// Required returns the role set for path and whether the path is protected.
func (p Policy) Required(path string) (models.RoleSet, bool) {
	set, ok := p[path]
	return set, ok
}

// Paths lists the protected paths in lexical order.
func (p Policy) Paths() []string {
	return slices.Sorted(maps.Keys(p))
}

// Validate checks the policy's structural rules: paths are absolute, no set
// admits RoleUnknown, /profile is reserved for patients, and every other
// protected path admits at least one staff role.
func (p Policy) Validate() error {
	var problems []string
	for _, path := range p.Paths() {
		set := p[path]
		if !strings.HasPrefix(path, "/") {
			problems = append(problems, fmt.Sprintf("%s: path must start with /", path))
		}
		if set.Contains(models.RoleUnknown) {
			problems = append(problems, fmt.Sprintf("%s: unknown role in allowed set", path))
		}
		if path == PathProfile {
			if set.Len() != 1 || !set.Contains(models.RolePatient) {
				problems = append(problems, fmt.Sprintf("%s: must allow exactly PATIENT, got [%s]", path, set))
			}
			continue
		}
		if !slices.ContainsFunc(set.Roles(), models.Role.IsStaff) {
			problems = append(problems, fmt.Sprintf("%s: no staff role in [%s]", path, set))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid route policy: %s", strings.Join(problems, "; "))
	}
	return nil
}

package cli

import (
	"context"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/physiofit/clinic/internal/client/models"
)

// Routes prints every application path, the roles it requires and whether
// the current user may open it.
func (a *App) Routes(_ context.Context) error {
	policy := a.gate.Policy()

	table := tablewriter.NewWriter(a.out)
	table.Header([]string{"Path", "Roles", "Access"})
	for _, path := range a.views.Paths() {
		roles := "public"
		if set, ok := policy.Required(path); ok {
			roles = set.String()
		}
		if err := table.Append([]string{path, roles, a.gate.Check(path).State.String()}); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderIdentity(w io.Writer, user *models.Claims) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Field", "Value"})
	rows := [][]string{
		{"User ID", string(user.UserID)},
		{"Name", user.DisplayName()},
		{"Email", user.Email},
		{"Role", user.Role().String()},
	}
	if exp := user.Expiry(); !exp.IsZero() {
		rows = append(rows, []string{"Token expires", exp.Local().Format("2006-01-02 15:04")})
	}
	for _, r := range rows {
		if err := table.Append(r); err != nil {
			return err
		}
	}
	return table.Render()
}

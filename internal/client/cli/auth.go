package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/physiofit/clinic/internal/client/client"
	"github.com/physiofit/clinic/internal/client/models"
	"github.com/physiofit/clinic/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login prompts for email and password and hands them to the session store,
// which navigates to the dashboard on success. The password is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	return a.session.Login(ctx, email, password)
}

// Logout ends the session; the store navigates to /login.
func (a *App) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

// Register prompts for the self-registration form, validates it locally and
// submits it. On success the user is sent to the login page.
func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter email", &req.Email},
		{"Enter first name", &req.FirstName},
		{"Enter last name", &req.LastName},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	req.Password = models.Secret(password)
	req.Password2 = models.Secret(confirm)

	if err := a.validate.Struct(req); err != nil {
		return validationError(err)
	}
	if !req.PasswordsMatch() {
		return fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}

	if err := a.api.Register(ctx, req); err != nil {
		a.log.Warn(ctx, "registration failed", "email", req.Email, "error", err)
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("registration rejected: %s", apiErr.Body)
		}
		return err
	}

	a.log.Info(ctx, "registered", "email", req.Email)
	fmt.Fprintln(a.out, "Account created. You can now log in.")
	return a.Navigate(ctx, common.PathLogin)
}

// WhoAmI prints the identity carried by the current access token.
func (a *App) WhoAmI(_ context.Context) error {
	user, ok := a.session.CurrentUser()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	return renderIdentity(a.out, user)
}

package cli

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/physiofit/clinic/internal/client/client"
	"github.com/physiofit/clinic/internal/client/session"
	"github.com/physiofit/clinic/internal/common"
)

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "email":
			msgs = append(msgs, fe.Field()+" must be a valid email address")
		case "min":
			msgs = append(msgs, fe.Field()+" must not be empty")
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", common.ErrValidation, strings.Join(msgs, "; "))
}

// userMessage turns a command error into text for the prompt.
func userMessage(err error) string {
	var loginErr *session.LoginError
	switch {
	case errors.As(err, &loginErr):
		return loginErr.Message
	case errors.Is(err, client.ErrUnauthorized):
		return "The server rejected your session. Please log in again."
	case errors.Is(err, client.ErrUnavailable):
		return session.MsgServerUnavailable
	default:
		return err.Error()
	}
}

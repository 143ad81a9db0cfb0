package models

import "bytes"

// RegisterRequest is the self-registration form sent to users/register/.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Password  Secret `json:"password" validate:"required,min=1"`
	Password2 Secret `json:"password2" validate:"required,min=1"`
}

func (r *RegisterRequest) PasswordsMatch() bool {
	return bytes.Equal(r.Password, r.Password2)
}

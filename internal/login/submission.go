package login

import (
	"github.com/fieldbase/admin/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Submission is one of Credentials or ResetRequest. Each variant carries its
// own field rules, so a password reset can never require a password.
type Submission interface {
	Mode() Mode
	Validate() error
}

// Credentials is a login submission.
type Credentials struct {
	Username   string `form:"username" validate:"required"`
	Password   string `form:"password" validate:"required"`
	RememberMe bool   `form:"remember_me"`
}

// ResetRequest is a forgot-password submission. The username field doubles as the email.
type ResetRequest struct {
	Email string `form:"username" validate:"required"`
}

func (Credentials) Mode() Mode  { return ModeLogin }
func (ResetRequest) Mode() Mode { return ModeForgotPassword }

// Validate returns domain.ErrMissingCredentials when a field is empty.
func (c Credentials) Validate() error {
	if err := validate.Struct(c); err != nil {
		return domain.ErrMissingCredentials
	}
	return nil
}

// Validate returns domain.ErrMissingEmail when the email is empty.
func (r ResetRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return domain.ErrMissingEmail
	}
	return nil
}

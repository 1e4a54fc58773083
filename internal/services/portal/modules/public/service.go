package public

import (
	"context"
	"errors"
	"strings"

	"github.com/maitri-healthcare/portal/internal/services/portal/integration/api"
	apperrors "github.com/maitri-healthcare/portal/internal/services/portal/platform/errors"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/i18n"
)

// minPasswordLength applies to signup only; login defers to the backend.
const minPasswordLength = 6

// AuthGateway is the backend surface used by the auth forms.
type AuthGateway interface {
	Login(ctx context.Context, credentials api.Credentials) (api.AuthResult, error)
	Signup(ctx context.Context, registration api.Registration) (api.AuthResult, error)
}

type unavailableGateway struct{}

func (unavailableGateway) Login(context.Context, api.Credentials) (api.AuthResult, error) {
	return api.AuthResult{}, apperrors.Wrap(apperrors.KindUnavailable, "", errors.New("auth backend is not configured"))
}

func (unavailableGateway) Signup(context.Context, api.Registration) (api.AuthResult, error) {
	return api.AuthResult{}, apperrors.Wrap(apperrors.KindUnavailable, "", errors.New("auth backend is not configured"))
}

// fieldErrors maps form fields to message keys.
type fieldErrors map[string]string

type loginForm struct {
	Email    string
	Password string
}

type signupForm struct {
	Name     string
	Email    string
	Password string
}

type service struct {
	auth AuthGateway
}

func newService(auth AuthGateway) service {
	return service{auth: auth}
}

func (f loginForm) normalized() loginForm {
	f.Email = strings.TrimSpace(f.Email)
	return f
}

func (f loginForm) validate() fieldErrors {
	errs := fieldErrors{}
	if f.Email == "" {
		errs["email"] = i18n.KeyEmailRequired
	}
	if f.Password == "" {
		errs["password"] = i18n.KeyPasswordRequired
	}
	return errs
}

func (f signupForm) normalized() signupForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	return f
}

func (f signupForm) validate() fieldErrors {
	errs := fieldErrors{}
	if f.Name == "" {
		errs["name"] = i18n.KeyNameRequired
	}
	if f.Email == "" {
		errs["email"] = i18n.KeyEmailRequired
	}
	switch {
	case f.Password == "":
		errs["password"] = i18n.KeyPasswordRequired
	case len([]rune(f.Password)) < minPasswordLength:
		errs["password"] = i18n.KeyPasswordTooShort
	}
	return errs
}

func (s service) login(ctx context.Context, form loginForm) (string, error) {
	result, err := s.auth.Login(ctx, api.Credentials{Email: form.Email, Password: form.Password})
	if err != nil {
		return "", err
	}
	return result.Token, nil
}

func (s service) signup(ctx context.Context, form signupForm) (string, error) {
	result, err := s.auth.Signup(ctx, api.Registration{Name: form.Name, Email: form.Email, Password: form.Password})
	if err != nil {
		return "", err
	}
	return result.Token, nil
}

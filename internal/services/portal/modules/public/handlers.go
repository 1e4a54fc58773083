package public

import (
	"net/http"

	"github.com/a-h/templ"
	module "github.com/maitri-healthcare/portal/internal/services/portal/module"
	apperrors "github.com/maitri-healthcare/portal/internal/services/portal/platform/errors"
	flashnotice "github.com/maitri-healthcare/portal/internal/services/portal/platform/flash"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/httpx"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/i18n"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/pagerender"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/weberror"
	"github.com/maitri-healthcare/portal/internal/services/portal/routepath"
	"github.com/maitri-healthcare/portal/internal/services/portal/templates"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	loc, _ := i18n.ResolveLocalizer(r)
	h.writePage(w, r, "", http.StatusOK, templates.Landing(templates.LandingView{
		Loc:        loc,
		LoginPath:  routepath.Login,
		SignupPath: routepath.Signup,
	}))
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteText(w, http.StatusOK, "ok")
}

func (handlers) handleLegacyDashboard(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.AppDashboard, http.StatusFound)
}

func (handlers) handleUnknown(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.Root, http.StatusFound)
}

func (h handlers) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, http.StatusOK, loginForm{}, nil, "")
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	loc, _ := i18n.ResolveLocalizer(r)
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, loginForm{}, nil, loc.Sprintf(i18n.KeyLoginFailed))
		return
	}
	form := loginForm{Email: r.PostFormValue("email"), Password: r.PostFormValue("password")}.normalized()
	if errs := form.validate(); len(errs) > 0 {
		h.renderLogin(w, r, http.StatusBadRequest, form, errs, "")
		return
	}
	token, err := h.service.login(r.Context(), form)
	if err != nil {
		h.deps.Logf(r.Context(), "login failed: %v", err)
		h.renderLogin(w, r, failureStatus(err), form, nil, alertMessage(loc, err, i18n.KeyLoginFailed))
		return
	}
	if !h.startSession(w, r, token, form.Email) {
		return
	}
	flashnotice.Write(w, r, flashnotice.Success(i18n.KeyLoginSuccess), h.deps.SchemePolicy)
	httpx.RedirectAfterPost(w, r, routepath.AppDashboard)
}

func (h handlers) handleSignupPage(w http.ResponseWriter, r *http.Request) {
	h.renderSignup(w, r, http.StatusOK, signupForm{}, nil, "")
}

func (h handlers) handleSignup(w http.ResponseWriter, r *http.Request) {
	loc, _ := i18n.ResolveLocalizer(r)
	if err := r.ParseForm(); err != nil {
		h.renderSignup(w, r, http.StatusBadRequest, signupForm{}, nil, loc.Sprintf(i18n.KeySignupFailed))
		return
	}
	form := signupForm{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}.normalized()
	if errs := form.validate(); len(errs) > 0 {
		h.renderSignup(w, r, http.StatusBadRequest, form, errs, "")
		return
	}
	token, err := h.service.signup(r.Context(), form)
	if err != nil {
		h.deps.Logf(r.Context(), "signup failed: %v", err)
		h.renderSignup(w, r, failureStatus(err), form, nil, alertMessage(loc, err, i18n.KeySignupFailed))
		return
	}
	if !h.startSession(w, r, token, form.Email) {
		return
	}
	flashnotice.Write(w, r, flashnotice.Success(i18n.KeySignupSuccess), h.deps.SchemePolicy)
	httpx.RedirectAfterPost(w, r, routepath.Login)
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Sessions.End(r.Context(), w, r); err != nil {
		h.deps.Logf(r.Context(), "logout: %v", err)
	}
	httpx.RedirectAfterPost(w, r, routepath.Root)
}

func (h handlers) startSession(w http.ResponseWriter, r *http.Request, token, email string) bool {
	if h.deps.Sessions == nil {
		h.deps.Logf(r.Context(), "start session: session manager is not configured")
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps)
		return false
	}
	if _, err := h.deps.Sessions.Start(r.Context(), w, r, token, email); err != nil {
		h.deps.Logf(r.Context(), "start session: %v", err)
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps)
		return false
	}
	return true
}

func (h handlers) renderLogin(w http.ResponseWriter, r *http.Request, status int, form loginForm, errs fieldErrors, alert string) {
	loc, _ := i18n.ResolveLocalizer(r)
	h.writePage(w, r, loc.Sprintf(i18n.KeyLoginTitle), status, templates.AuthForm(templates.AuthFormView{
		Loc:     loc,
		Action:  routepath.Login,
		AltPath: routepath.Signup,
		Email:   form.Email,
		Errors:  localizeErrors(loc, errs),
		Alert:   alert,
	}))
}

func (h handlers) renderSignup(w http.ResponseWriter, r *http.Request, status int, form signupForm, errs fieldErrors, alert string) {
	loc, _ := i18n.ResolveLocalizer(r)
	h.writePage(w, r, loc.Sprintf(i18n.KeySignupTitle), status, templates.AuthForm(templates.AuthFormView{
		Loc:       loc,
		Signup:    true,
		Action:    routepath.Signup,
		AltPath:   routepath.Login,
		Name:      form.Name,
		Email:     form.Email,
		Errors:    localizeErrors(loc, errs),
		Alert:     alert,
		MinLength: minPasswordLength,
	}))
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, title string, status int, body templ.Component) {
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:      title,
		StatusCode: status,
		Fragment:   body,
	}); err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

func localizeErrors(loc i18n.Localizer, errs fieldErrors) templates.FieldErrors {
	out := templates.FieldErrors{}
	for field, key := range errs {
		out[field] = loc.Sprintf(key)
	}
	return out
}

// failureStatus maps a backend auth failure to the form response status.
func failureStatus(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	case apperrors.KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusServiceUnavailable
	}
}

// alertMessage prefers the backend's own error text.
func alertMessage(loc i18n.Localizer, err error, fallbackKey string) string {
	if message := apperrors.Message(err); message != "" {
		return message
	}
	return loc.Sprintf(fallbackKey)
}

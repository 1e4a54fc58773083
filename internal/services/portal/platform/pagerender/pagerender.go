// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/maitri-healthcare/portal/internal/services/portal/module"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/authctx"
	flashnotice "github.com/maitri-healthcare/portal/internal/services/portal/platform/flash"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/httpx"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/i18n"
	"github.com/maitri-healthcare/portal/internal/services/portal/routepath"
	"github.com/maitri-healthcare/portal/internal/services/portal/templates"
)

// StylePath is the embedded stylesheet route.
const StylePath = routepath.StaticPrefix + "portal.css"

// ModulePage describes one full-page response.
type ModulePage struct {
	// Title is the localized page name; the site suffix is added here.
	Title      string
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage renders page inside the shared layout. A pending flash
// notice is consumed and shown as a toast.
func WriteModulePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	loc, tag := i18n.ResolveLocalizer(r)
	ctx := httpx.RequestContext(r)
	view := templates.LayoutView{
		Title:      title(loc, page.Title),
		Lang:       tag.String(),
		Loc:        loc,
		Toast:      resolveFlashToast(w, r, loc, deps),
		LogoutPath: routepath.Logout,
		LoginPath:  routepath.Login,
		SignupPath: routepath.Signup,
		HomePath:   routepath.Root,
		StylePath:  StylePath,
	}
	if s, ok := authctx.SessionFromContext(ctx); ok {
		view.Email = s.Email
		view.HomePath = routepath.AppDashboard
	}

	var buf bytes.Buffer
	if err := templates.Layout(view).Render(templ.WithChildren(ctx, fragment), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func title(loc i18n.Localizer, page string) string {
	page = strings.TrimSpace(page)
	site := loc.Sprintf(i18n.KeySiteName)
	if page == "" {
		return site
	}
	return loc.Sprintf(i18n.KeyTitle, page)
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, loc i18n.Localizer, deps module.Dependencies) *templates.Toast {
	notice, ok := flashnotice.ReadAndClear(w, r, deps.SchemePolicy)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(loc.Sprintf(notice.Key))
	if message == "" {
		message = strings.TrimSpace(notice.Key)
	}
	if message == "" {
		return nil
	}
	return &templates.Toast{
		Kind:    string(notice.Kind),
		Message: message,
	}
}

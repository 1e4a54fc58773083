// Package templates renders portal pages as templ components backed by
// embedded html/template files.
package templates

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for page components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

type fallbackLocalizer struct{}

func (fallbackLocalizer) Sprintf(key message.Reference, args ...any) string {
	keyString, ok := key.(string)
	if !ok {
		return ""
	}
	if len(args) > 0 {
		return fmt.Sprintf(keyString, args...)
	}
	return keyString
}

// T returns a translated string or the key itself when loc is nil.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		loc = fallbackLocalizer{}
	}
	return loc.Sprintf(key, args...)
}

func withLocalizer(loc Localizer) Localizer {
	if loc == nil {
		return fallbackLocalizer{}
	}
	return loc
}

//go:embed html/*.html
var files embed.FS

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"t":        T,
	"errorFor": func(errs FieldErrors, field string) string { return errs[field] },
}).ParseFS(files, "html/*.html"))

func page(name string, data any) templ.Component {
	return templ.FromGoHTML(pages.Lookup(name), data)
}

// Layout renders the page chrome around the children in ctx.
func Layout(view LayoutView) templ.Component {
	view.Loc = withLocalizer(view.Loc)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var body bytes.Buffer
		if err := templ.GetChildren(ctx).Render(templ.ClearChildren(ctx), &body); err != nil {
			return err
		}
		return pages.ExecuteTemplate(w, "layout", struct {
			LayoutView
			Body template.HTML
		}{LayoutView: view, Body: template.HTML(body.String())})
	})
}

// Landing renders the anonymous home page.
func Landing(view LandingView) templ.Component {
	view.Loc = withLocalizer(view.Loc)
	return page("landing", view)
}

// AuthForm renders the login or signup form.
func AuthForm(view AuthFormView) templ.Component {
	view.Loc = withLocalizer(view.Loc)
	if view.Errors == nil {
		view.Errors = FieldErrors{}
	}
	return page("auth", view)
}

// Dashboard renders the submissions table page.
func Dashboard(view DashboardView) templ.Component {
	view.Loc = withLocalizer(view.Loc)
	return page("dashboard", view)
}

// ErrorPage renders the app error state.
func ErrorPage(view ErrorView) templ.Component {
	view.Loc = withLocalizer(view.Loc)
	return page("error", view)
}

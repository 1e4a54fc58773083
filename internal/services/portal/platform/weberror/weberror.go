// Package weberror renders shared error responses for portal modules.
package weberror

import (
	"net/http"
	"strings"

	module "github.com/maitri-healthcare/portal/internal/services/portal/module"
	apperrors "github.com/maitri-healthcare/portal/internal/services/portal/platform/errors"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/i18n"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/pagerender"
	"github.com/maitri-healthcare/portal/internal/services/portal/routepath"
	"github.com/maitri-healthcare/portal/internal/services/portal/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage returns the status text for err; internal error text never
// reaches the response.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes the localized error page. Statuses other than 404
// and 5xx are rendered as 500.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	loc, _ := i18n.ResolveLocalizer(r)
	headingKey, messageKey := i18n.KeyErrorServerTitle, i18n.KeyErrorServerMessage
	if statusCode == http.StatusNotFound {
		headingKey, messageKey = i18n.KeyErrorNotFoundTitle, i18n.KeyErrorNotFoundMessage
	}
	heading := loc.Sprintf(headingKey)
	fragment := templates.ErrorPage(templates.ErrorView{
		Loc:      loc,
		Status:   statusCode,
		Heading:  heading,
		Message:  loc.Sprintf(messageKey),
		HomePath: routepath.Root,
	})
	if err := pagerender.WriteModulePage(w, r, deps, pagerender.ModulePage{
		Title:      heading,
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, deps)
		return
	}
	http.Error(w, PublicMessage(err), statusCode)
}

package public

import (
	"net/http"

	"github.com/maitri-healthcare/portal/internal/services/portal/platform/httpx"
	"github.com/maitri-healthcare/portal/internal/services/portal/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleLanding)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodGet+" "+routepath.LegacyDashboard, h.handleLegacyDashboard)

	mux.HandleFunc(http.MethodGet+" "+routepath.Login, h.handleLoginPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.Login, h.handleLogin)

	mux.HandleFunc(http.MethodGet+" "+routepath.Signup, h.handleSignupPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.Signup, h.handleSignup)

	mux.HandleFunc(http.MethodPost+" "+routepath.Logout, h.handleLogout)
	mux.HandleFunc(http.MethodGet+" "+routepath.Logout, httpx.MethodNotAllowed(http.MethodPost))

	mux.HandleFunc(http.MethodGet+" /{rest...}", h.handleUnknown)
}

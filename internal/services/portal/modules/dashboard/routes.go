package dashboard

import (
	"net/http"

	"github.com/maitri-healthcare/portal/internal/services/portal/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppDashboard, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardExport, h.handleExport)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardPrefix+"{rest...}", h.handleNotFound)
}

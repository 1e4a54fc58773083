// Package dashboard serves the authenticated submissions table and its CSV
// export.
package dashboard

import (
	"net/http"

	module "github.com/maitri-healthcare/portal/internal/services/portal/module"
	"github.com/maitri-healthcare/portal/internal/services/portal/routepath"
)

// Module provides dashboard routes.
type Module struct {
	gateway SubmissionGateway
}

// New returns a dashboard module without a backend; every load fails and
// signs the viewer out.
func New() Module {
	return Module{}
}

// NewWithGateway returns a dashboard module with an explicit gateway.
func NewWithGateway(gateway SubmissionGateway) Module {
	return Module{gateway: gateway}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Mount wires dashboard route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	gateway := m.gateway
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	h := newHandlers(newService(gateway), deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.DashboardPrefix, Handler: mux}, nil
}

// Package public serves the anonymous landing, login and signup pages.
package public

import (
	"net/http"

	module "github.com/maitri-healthcare/portal/internal/services/portal/module"
	"github.com/maitri-healthcare/portal/internal/services/portal/routepath"
)

// Module provides public routes.
type Module struct {
	gateway AuthGateway
}

// New returns a public module without a backend; auth forms report the
// backend as unavailable.
func New() Module {
	return Module{}
}

// NewWithGateway returns a public module with an explicit auth gateway.
func NewWithGateway(gateway AuthGateway) Module {
	return Module{gateway: gateway}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires public route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	gateway := m.gateway
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	h := newHandlers(newService(gateway), deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

package modules

import (
	"github.com/maitri-healthcare/portal/internal/services/portal/modules/dashboard"
	"github.com/maitri-healthcare/portal/internal/services/portal/modules/public"
)

// Backend is the remote API surface every portal module needs.
type Backend interface {
	public.AuthGateway
	dashboard.SubmissionGateway
}

// DefaultPublicModules returns the anonymous portal modules.
func DefaultPublicModules(backend Backend) []Module {
	if backend == nil {
		return []Module{public.New()}
	}
	return []Module{public.NewWithGateway(backend)}
}

// DefaultProtectedModules returns the authenticated portal modules.
func DefaultProtectedModules(backend Backend) []Module {
	if backend == nil {
		return []Module{dashboard.New()}
	}
	return []Module{dashboard.NewWithGateway(backend)}
}

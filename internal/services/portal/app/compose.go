// Package app composes portal modules into the root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/maitri-healthcare/portal/internal/services/portal/module"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/authctx"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/requestmeta"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/sessioncookie"
	"github.com/maitri-healthcare/portal/internal/services/portal/routepath"
)

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	Dependencies module.Dependencies
	// AuthRequired reports whether a request is authenticated. Nil uses
	// the session resolved into the request context.
	AuthRequired     func(*http.Request) bool
	PublicModules    []module.Module
	ProtectedModules []module.Module
}

// Composer mounts public modules as is and protected modules behind the
// login redirect and the same-origin check.
type Composer struct{}

// group is one class of modules sharing a prefix rule and a wrapper.
type group struct {
	name     string
	modules  []module.Module
	underApp bool
	wrap     func(http.Handler) http.Handler
}

// router records which module owns each prefix.
type router struct {
	mux    *http.ServeMux
	owners map[string]string
}

// Compose builds a root HTTP handler from module groups.
func (Composer) Compose(input ComposeInput) (http.Handler, error) {
	authenticated := input.AuthRequired
	if authenticated == nil {
		authenticated = authctx.Authenticated
	}
	rt := router{mux: http.NewServeMux(), owners: make(map[string]string)}
	groups := []group{
		{name: "public", modules: input.PublicModules},
		{
			name:     "protected",
			modules:  input.ProtectedModules,
			underApp: true,
			wrap:     protect(authenticated, input.Dependencies.SchemePolicy),
		},
	}
	for _, g := range groups {
		for _, feature := range g.modules {
			if err := rt.mount(g, feature, input.Dependencies); err != nil {
				return nil, err
			}
		}
	}
	return rt.mux, nil
}

func (rt router) mount(g group, feature module.Module, deps module.Dependencies) error {
	if feature == nil {
		return fmt.Errorf("%s module is nil", g.name)
	}
	mount, err := feature.Mount(deps)
	if err != nil {
		return fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if mount.Handler == nil {
		return fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	prefix := normalizePrefix(mount.Prefix)
	if prefix == "" {
		return fmt.Errorf("mount module %q: prefix is required", feature.ID())
	}
	if underApp := strings.HasPrefix(prefix, routepath.AppPrefix); underApp != g.underApp {
		if g.underApp {
			return fmt.Errorf("module %q must mount under %s, got %q", feature.ID(), routepath.AppPrefix, prefix)
		}
		return fmt.Errorf("module %q has protected prefix %q in public group", feature.ID(), prefix)
	}
	if owner, taken := rt.owners[prefix]; taken {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, owner)
	}
	rt.owners[prefix] = feature.ID()

	handler := mount.Handler
	if g.wrap != nil {
		handler = g.wrap(handler)
	}
	rt.mux.Handle(prefix, handler)
	// Without this ServeMux answers the bare path with a redirect to prefix.
	if bare := strings.TrimSuffix(prefix, "/"); bare != "" {
		rt.mux.Handle(bare, handler)
	}
	return nil
}

// normalizePrefix returns prefix with a leading and trailing slash, or ""
// when blank.
func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}

// protect sends anonymous viewers to the login page and rejects
// cookie-authenticated mutations that carry no same-origin proof.
func protect(authenticated func(*http.Request) bool, policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			return http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authenticated(r) {
				http.Redirect(w, r, routepath.Login, http.StatusFound)
				return
			}
			if isMutation(r.Method) && hasSessionCookie(r) && !policy.HasSameOriginProof(r) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r)
	return ok
}

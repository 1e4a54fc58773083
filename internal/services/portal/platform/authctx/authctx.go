// Package authctx carries the resolved portal session through request context.
package authctx

import (
	"context"
	"log"
	"net/http"

	"github.com/maitri-healthcare/portal/internal/services/portal/session"
)

type sessionKey struct{}

// Resolver looks up the session named by a request.
type Resolver interface {
	Resolve(r *http.Request) (session.Session, bool, error)
}

// WithSession returns ctx carrying s.
func WithSession(ctx context.Context, s session.Session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session stored in ctx.
func SessionFromContext(ctx context.Context) (session.Session, bool) {
	if ctx == nil {
		return session.Session{}, false
	}
	s, ok := ctx.Value(sessionKey{}).(session.Session)
	return s, ok
}

// Authenticated reports whether the request carries a resolved session.
func Authenticated(r *http.Request) bool {
	if r == nil {
		return false
	}
	_, ok := SessionFromContext(r.Context())
	return ok
}

// Middleware resolves the session cookie once per request. Lookup failures
// are logged and the request continues anonymously.
func Middleware(resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		if resolver == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok, err := resolver.Resolve(r)
			if err != nil {
				log.Printf("resolve session path=%s: %v", r.URL.Path, err)
			}
			if ok {
				r = r.WithContext(WithSession(r.Context(), s))
			}
			next.ServeHTTP(w, r)
		})
	}
}

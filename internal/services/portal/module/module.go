// Package module defines the feature contract used by portal composition.
package module

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/maitri-healthcare/portal/internal/platform/requestctx"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/observability"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/requestmeta"
	"github.com/maitri-healthcare/portal/internal/services/portal/session"
)

// Dependencies carries shared runtime collaborators into modules.
type Dependencies struct {
	Sessions     *session.Manager
	SchemePolicy requestmeta.SchemePolicy
	// Location is the display timezone for timestamps. Nil means UTC.
	Location *time.Location
	Metrics  *observability.Metrics
	Logger   *log.Logger
}

// DisplayLocation returns the configured display timezone.
func (d Dependencies) DisplayLocation() *time.Location {
	if d.Location == nil {
		return time.UTC
	}
	return d.Location
}

// Logf logs through the configured logger or the standard logger, tagging
// the line with the request id carried by ctx.
func (d Dependencies) Logf(ctx context.Context, format string, args ...any) {
	requestID := requestctx.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = "-"
	}
	line := fmt.Sprintf(format, args...) + " request_id=" + requestID
	if d.Logger != nil {
		d.Logger.Print(line)
		return
	}
	log.Print(line)
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by portal composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}

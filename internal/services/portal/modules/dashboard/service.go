package dashboard

import (
	"context"
	"errors"
	"strings"

	"github.com/maitri-healthcare/portal/internal/submission"
	apperrors "github.com/maitri-healthcare/portal/internal/services/portal/platform/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/maitri-healthcare/portal/internal/services/portal/modules/dashboard"

// SubmissionGateway loads every submission visible to a backend token.
type SubmissionGateway interface {
	Dashboard(ctx context.Context, token string) ([]submission.Submission, error)
}

type unavailableGateway struct{}

func (unavailableGateway) Dashboard(context.Context, string) ([]submission.Submission, error) {
	return nil, apperrors.Wrap(apperrors.KindUnavailable, "", errors.New("submissions backend is not configured"))
}

type service struct {
	gateway SubmissionGateway
	tracer  trace.Tracer
}

func newService(gateway SubmissionGateway) service {
	return service{gateway: gateway, tracer: otel.Tracer(tracerName)}
}

// listing is one dashboard load.
type listing struct {
	// Countries come from the unfiltered set.
	Countries []string
	// Records are the filtered, ordered records, or every record when the
	// query was rejected.
	Records []submission.Submission
	Total   int
	// QueryErr is set when the query could not be applied.
	QueryErr error
}

// load fetches submissions once and applies q. Backend failures are
// returned; invalid queries are reported on the listing.
func (s service) load(ctx context.Context, token string, q submission.Query) (listing, error) {
	records, err := s.gateway.Dashboard(ctx, token)
	if err != nil {
		return listing{}, err
	}

	_, span := s.tracer.Start(ctx, "dashboard.filter", trace.WithAttributes(
		attribute.Int("submissions.total", len(records)),
		attribute.Bool("query.search", strings.TrimSpace(q.Search) != ""),
		attribute.Bool("query.filter", q.Filter != ""),
		attribute.Bool("query.order_by", q.OrderBy != ""),
	))
	defer span.End()

	out := listing{Countries: submission.Countries(records), Total: len(records)}
	filtered, err := submission.Apply(records, q)
	if err != nil {
		if !errors.Is(err, submission.ErrInvalidQuery) {
			span.RecordError(err)
			return listing{}, err
		}
		span.RecordError(err)
		out.Records = records
		out.QueryErr = err
		span.SetAttributes(attribute.Bool("query.rejected", true))
		return out, nil
	}
	out.Records = filtered
	span.SetAttributes(attribute.Int("submissions.matched", len(filtered)))
	return out, nil
}

// queryErrorText strips the sentinel prefix from a rejected query error.
func queryErrorText(err error) string {
	if err == nil {
		return ""
	}
	return strings.TrimPrefix(err.Error(), submission.ErrInvalidQuery.Error()+": ")
}

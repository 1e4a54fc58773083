package submission

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Query parameter names shared by the dashboard, export and CLI.
const (
	ParamSearch  = "search"
	ParamCountry = "country"
	ParamStart   = "start"
	ParamEnd     = "end"
	ParamFilter  = "filter"
	ParamOrderBy = "order_by"
	ParamPage    = "page"
)

// DateLayout is the accepted format of start/end bounds.
const DateLayout = "2006-01-02"

// ErrInvalidQuery marks query inputs that cannot be applied.
var ErrInvalidQuery = errors.New("invalid query")

// Query selects and orders submissions.
type Query struct {
	// Search matches full name or email, case-insensitively.
	Search string
	// Country matches currentCountry exactly.
	Country string
	// Start and End are inclusive calendar dates (UTC) bounding createdAt.
	Start string
	End   string
	// Filter is an AIP-160 expression over snake_case field names.
	Filter string
	// OrderBy is an AIP-132 order_by clause over snake_case field names.
	OrderBy string
}

// ParseQuery reads a query from URL values.
func ParseQuery(values url.Values) Query {
	return Query{
		Search:  values.Get(ParamSearch),
		Country: values.Get(ParamCountry),
		Start:   strings.TrimSpace(values.Get(ParamStart)),
		End:     strings.TrimSpace(values.Get(ParamEnd)),
		Filter:  strings.TrimSpace(values.Get(ParamFilter)),
		OrderBy: strings.TrimSpace(values.Get(ParamOrderBy)),
	}
}

// Values encodes the non-empty query fields as URL values.
func (q Query) Values() url.Values {
	values := url.Values{}
	set := func(key, value string) {
		if strings.TrimSpace(value) != "" {
			values.Set(key, value)
		}
	}
	set(ParamSearch, q.Search)
	set(ParamCountry, q.Country)
	set(ParamStart, q.Start)
	set(ParamEnd, q.End)
	set(ParamFilter, q.Filter)
	set(ParamOrderBy, q.OrderBy)
	return values
}

// IsZero reports whether the query selects every record in backend order.
func (q Query) IsZero() bool {
	return len(q.Values()) == 0
}

// Plan is a validated query ready to run against records.
type Plan struct {
	search  string
	country string
	start   time.Time
	end     time.Time
	filter  Filter
	order   Order
}

// Compile validates q. Errors wrap ErrInvalidQuery.
func Compile(q Query) (Plan, error) {
	plan := Plan{
		search:  cases.Fold().String(strings.TrimSpace(q.Search)),
		country: q.Country,
	}
	var err error
	if plan.start, err = parseDate(ParamStart, q.Start); err != nil {
		return Plan{}, err
	}
	if plan.end, err = parseDate(ParamEnd, q.End); err != nil {
		return Plan{}, err
	}
	if !plan.end.IsZero() {
		// End is inclusive of the whole day.
		plan.end = plan.end.AddDate(0, 0, 1)
	}
	if plan.filter, err = ParseFilter(q.Filter); err != nil {
		return Plan{}, err
	}
	if plan.order, err = ParseOrder(q.OrderBy); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

func parseDate(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s date %q must be YYYY-MM-DD", ErrInvalidQuery, name, value)
	}
	return parsed.UTC(), nil
}

// Apply filters then orders records according to q.
func Apply(records []Submission, q Query) ([]Submission, error) {
	plan, err := Compile(q)
	if err != nil {
		return nil, err
	}
	return plan.Run(records), nil
}

// Run returns a new slice with the matching records in plan order.
func (p Plan) Run(records []Submission) []Submission {
	fold := cases.Fold()
	out := make([]Submission, 0, len(records))
	for _, record := range records {
		if p.search != "" && !containsFolded(fold, record.FullName.String(), p.search) && !containsFolded(fold, record.Email.String(), p.search) {
			continue
		}
		if p.country != "" && record.CurrentCountry.String() != p.country {
			continue
		}
		if !p.inDateRange(record.CreatedAt) {
			continue
		}
		if !p.filter.Match(record) {
			continue
		}
		out = append(out, record)
	}
	p.order.Sort(out)
	return out
}

func (p Plan) inDateRange(createdAt time.Time) bool {
	if p.start.IsZero() && p.end.IsZero() {
		return true
	}
	if createdAt.IsZero() {
		return false
	}
	if !p.start.IsZero() && createdAt.Before(p.start) {
		return false
	}
	if !p.end.IsZero() && !createdAt.Before(p.end) {
		return false
	}
	return true
}

func containsFolded(fold cases.Caser, haystack, foldedNeedle string) bool {
	return strings.Contains(fold.String(haystack), foldedNeedle)
}

// Countries returns the distinct non-empty currentCountry values in
// first-seen order.
func Countries(records []Submission) []string {
	seen := make(map[string]struct{})
	countries := make([]string, 0)
	for _, record := range records {
		country := record.CurrentCountry.String()
		if country == "" {
			continue
		}
		if _, ok := seen[country]; ok {
			continue
		}
		seen[country] = struct{}{}
		countries = append(countries, country)
	}
	return countries
}

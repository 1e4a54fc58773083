package submission

import (
	"errors"
	"net/url"
	"testing"
	"time"
)

func fixtures() []Submission {
	return []Submission{
		{ID: "1", FullName: "Asha Nair", Email: "asha@example.com", CurrentCountry: "India", CreatedAt: time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)},
		{ID: "2", FullName: "Marco Rossi", Email: "marco@example.it", CurrentCountry: "Italy", CreatedAt: time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC)},
		{ID: "3", FullName: "Priya Das", Email: "PRIYA@Example.com", CurrentCountry: "India", CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "4", FullName: "Joseph K", Email: "jk@example.ph", CurrentCountry: "Philippines"},
		{ID: "5", FullName: "Élodie Martin", Email: "elodie@example.fr", CurrentCountry: "", CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
	}
}

func ids(records []Submission) []string {
	out := make([]string, 0, len(records))
	for _, record := range records {
		out = append(out, record.ID.String())
	}
	return out
}

func assertIDs(t *testing.T, got []Submission, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("ids = %v, want %v", gotIDs, want)
	}
	for idx := range want {
		if gotIDs[idx] != want[idx] {
			t.Fatalf("ids = %v, want %v", gotIDs, want)
		}
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{name: "zero query keeps all", query: Query{}, want: []string{"1", "2", "3", "4", "5"}},
		{name: "search name case-insensitive", query: Query{Search: "ROSSI"}, want: []string{"2"}},
		{name: "search email case-insensitive", query: Query{Search: "priya@example"}, want: []string{"3"}},
		{name: "search folds accents case", query: Query{Search: "élodie"}, want: []string{"5"}},
		{name: "blank search matches all", query: Query{Search: "   "}, want: []string{"1", "2", "3", "4", "5"}},
		{name: "country exact", query: Query{Country: "India"}, want: []string{"1", "3"}},
		{name: "country is not substring", query: Query{Country: "Ind"}, want: []string{}},
		{name: "start inclusive", query: Query{Start: "2024-01-15"}, want: []string{"2", "3", "5"}},
		{name: "end inclusive of whole day", query: Query{End: "2024-01-15"}, want: []string{"1", "2"}},
		{name: "range", query: Query{Start: "2024-01-11", End: "2024-02-01"}, want: []string{"2", "3"}},
		{name: "combined", query: Query{Search: "example.com", Country: "India", Start: "2024-01-31"}, want: []string{"3"}},
		{name: "ordered", query: Query{OrderBy: "full_name desc"}, want: []string{"5", "3", "2", "4", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Apply(fixtures(), tt.query)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			assertIDs(t, got, tt.want...)
		})
	}
}

func TestApplyCountryCountMatchesRecords(t *testing.T) {
	t.Parallel()

	records := fixtures()
	for _, country := range Countries(records) {
		got, err := Apply(records, Query{Country: country})
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		want := 0
		for _, record := range records {
			if record.CurrentCountry.String() == country {
				want++
			}
		}
		if len(got) != want {
			t.Fatalf("country %q: len = %d, want %d", country, len(got), want)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	records := fixtures()
	if _, err := Apply(records, Query{OrderBy: "created_at desc"}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	assertIDs(t, records, "1", "2", "3", "4", "5")
}

func TestApplyRejectsInvalidDates(t *testing.T) {
	t.Parallel()

	for _, q := range []Query{{Start: "01/02/2024"}, {End: "2024-13-01"}} {
		if _, err := Apply(fixtures(), q); !errors.Is(err, ErrInvalidQuery) {
			t.Fatalf("Apply(%+v) error = %v, want ErrInvalidQuery", q, err)
		}
	}
}

func TestParseQueryAndValuesRoundTrip(t *testing.T) {
	t.Parallel()

	values := url.Values{}
	values.Set(ParamSearch, "asha")
	values.Set(ParamCountry, "India")
	values.Set(ParamStart, " 2024-01-01 ")
	values.Set(ParamPage, "3")

	q := ParseQuery(values)
	if q.Start != "2024-01-01" {
		t.Fatalf("Start = %q, want trimmed date", q.Start)
	}
	encoded := q.Values()
	if encoded.Get(ParamCountry) != "India" || encoded.Get(ParamSearch) != "asha" {
		t.Fatalf("Values() = %v", encoded)
	}
	if encoded.Has(ParamPage) || encoded.Has(ParamEnd) {
		t.Fatalf("Values() = %v, want only non-empty filters", encoded)
	}
	if q.IsZero() {
		t.Fatal("IsZero() = true, want false")
	}
	if !(Query{}).IsZero() {
		t.Fatal("zero Query IsZero() = false")
	}
}

func TestCountriesFirstSeenOrder(t *testing.T) {
	t.Parallel()

	got := Countries(fixtures())
	want := []string{"India", "Italy", "Philippines"}
	if len(got) != len(want) {
		t.Fatalf("Countries() = %v, want %v", got, want)
	}
	for idx := range want {
		if got[idx] != want[idx] {
			t.Fatalf("Countries() = %v, want %v", got, want)
		}
	}
}

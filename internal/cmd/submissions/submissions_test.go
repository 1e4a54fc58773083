package submissions

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maitri-healthcare/portal/internal/platform/config"
	"github.com/maitri-healthcare/portal/internal/submission"
)

const dashboardJSON = `{"submissions":[
{"_id":"a1","fullName":"Asha","email":"asha@example.com","currentCountry":"India","createdAt":"2024-05-01T09:00:00Z"},
{"_id":"b2","fullName":"Bruno","email":"bruno@example.com","currentCountry":"Italy","createdAt":"2024-05-02T09:00:00Z"}
]}`

type backend struct {
	server *httptest.Server
	logins int
}

func newBackend(t *testing.T) *backend {
	t.Helper()

	b := &backend{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		b.logins++
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		if body.Password != "secret1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":"Invalid credentials"}`)
			return
		}
		_, _ = io.WriteString(w, `{"token":"tok-123"}`)
	})
	mux.HandleFunc("GET /api/dashboard", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":"Invalid token"}`)
			return
		}
		_, _ = io.WriteString(w, dashboardJSON)
	})
	b.server = httptest.NewServer(mux)
	t.Cleanup(b.server.Close)
	return b
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "token", cfg: Config{APIBaseURL: "http://x", Token: "t"}},
		{name: "credentials", cfg: Config{APIBaseURL: "http://x", Email: "a@b.c", Password: "p"}},
		{name: "missing base url", cfg: Config{Token: "t"}, wantErr: true},
		{name: "missing password", cfg: Config{APIBaseURL: "http://x", Email: "a@b.c"}, wantErr: true},
		{name: "nothing", cfg: Config{APIBaseURL: "http://x"}, wantErr: true},
	}
	for _, tt := range tests {
		if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
			t.Fatalf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestRunWithTokenWritesFilteredCSV(t *testing.T) {
	t.Parallel()

	b := newBackend(t)
	var out, errOut bytes.Buffer
	err := Run(context.Background(), Config{
		APIBaseURL: b.server.URL,
		Token:      "tok-123",
		Query:      submission.Query{Country: "Italy"},
	}, &out, &errOut)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if b.logins != 0 {
		t.Fatalf("logins = %d, want 0", b.logins)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2: %q", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "_id,fullName,") {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "b2,Bruno,") {
		t.Fatalf("row = %q", lines[1])
	}
	if !strings.Contains(errOut.String(), "wrote 1 of 2 submissions") {
		t.Fatalf("log = %q", errOut.String())
	}
}

func TestRunLogsInAndWritesFile(t *testing.T) {
	t.Parallel()

	b := newBackend(t)
	path := filepath.Join(t.TempDir(), "out.csv")
	err := Run(context.Background(), Config{
		APIBaseURL: b.server.URL,
		Email:      " admin@example.com ",
		Password:   "secret1",
		Query:      submission.Query{OrderBy: "full_name desc"},
		Out:        path,
	}, io.Discard, io.Discard)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if b.logins != 1 {
		t.Fatalf("logins = %d, want 1", b.logins)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[1], "b2,") || !strings.HasPrefix(lines[2], "a1,") {
		t.Fatalf("output = %q", string(data))
	}
}

func TestRunReportsLoginFailure(t *testing.T) {
	t.Parallel()

	b := newBackend(t)
	err := Run(context.Background(), Config{
		APIBaseURL: b.server.URL,
		Email:      "admin@example.com",
		Password:   "wrong",
	}, io.Discard, io.Discard)
	if err == nil || !strings.Contains(err.Error(), "Invalid credentials") {
		t.Fatalf("Run() error = %v, want login failure", err)
	}
}

func TestRunRejectsInvalidQueryBeforeFetching(t *testing.T) {
	t.Parallel()

	b := newBackend(t)
	err := Run(context.Background(), Config{
		APIBaseURL: b.server.URL,
		Email:      "admin@example.com",
		Password:   "secret1",
		Query:      submission.Query{Start: "05/01/2024"},
	}, io.Discard, io.Discard)
	if err == nil {
		t.Fatal("expected invalid query error")
	}
	if b.logins != 0 {
		t.Fatalf("logins = %d, want 0", b.logins)
	}
}

func TestParseConfigFlagsAndEnv(t *testing.T) {
	t.Setenv(config.EnvFileVar, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("PORTAL_API_BASE_URL", "http://backend.test")
	t.Setenv("PORTAL_API_TOKEN", "env-token")

	fs := flag.NewFlagSet("submissions", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, err := ParseConfig(fs, []string{"-country", "India", "-order-by", "created_at desc", "-out", "x.csv"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.APIBaseURL != "http://backend.test" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.Token != "env-token" {
		t.Fatalf("Token = %q, want %q", cfg.Token, "env-token")
	}
	if cfg.Query.Country != "India" || cfg.Query.OrderBy != "created_at desc" {
		t.Fatalf("Query = %+v", cfg.Query)
	}
	if cfg.Out != "x.csv" {
		t.Fatalf("Out = %q, want %q", cfg.Out, "x.csv")
	}
}

func TestParseConfigRejectsPositionalArgs(t *testing.T) {
	t.Setenv(config.EnvFileVar, filepath.Join(t.TempDir(), "missing.env"))

	fs := flag.NewFlagSet("submissions", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := ParseConfig(fs, []string{"extra"}); err == nil {
		t.Fatal("expected error for positional arguments")
	}
}

package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsHTTPS(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest(http.MethodGet, "http://portal.local/", nil)
	if (SchemePolicy{}).IsHTTPS(plain) {
		t.Fatal("plain request reported https")
	}

	secure := httptest.NewRequest(http.MethodGet, "http://portal.local/", nil)
	secure.URL.Scheme = ""
	secure.TLS = &tls.ConnectionState{}
	if !(SchemePolicy{}).IsHTTPS(secure) {
		t.Fatal("tls request not reported https")
	}

	forwarded := httptest.NewRequest(http.MethodGet, "/", nil)
	forwarded.Header.Set("X-Forwarded-Proto", "https")
	if (SchemePolicy{}).IsHTTPS(forwarded) {
		t.Fatal("forwarded proto trusted without policy")
	}
	if !(SchemePolicy{TrustForwardedProto: true}).IsHTTPS(forwarded) {
		t.Fatal("forwarded proto ignored with policy")
	}
}

func TestHasSameOriginProof(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		origin  string
		referer string
		want    bool
	}{
		{name: "matching origin", origin: "http://portal.local", want: true},
		{name: "explicit default port", origin: "http://portal.local:80", want: true},
		{name: "other host", origin: "http://evil.example", want: false},
		{name: "other scheme", origin: "https://portal.local", want: false},
		{name: "referer fallback", referer: "http://portal.local/login", want: true},
		{name: "foreign referer", referer: "http://evil.example/login", want: false},
		{name: "no proof", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/logout", nil)
			req.Host = "portal.local"
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}
			if got := (SchemePolicy{}).HasSameOriginProof(req); got != tt.want {
				t.Fatalf("HasSameOriginProof() = %v, want %v", got, tt.want)
			}
		})
	}
}

package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/maitri-healthcare/portal/internal/services/portal/platform/requestmeta"
)

func TestReadTrimsAndRejectsEmpty(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := Read(req); ok {
		t.Fatal("expected missing cookie")
	}
	req.AddCookie(&http.Cookie{Name: Name, Value: "  "})
	if _, ok := Read(req); ok {
		t.Fatal("expected blank cookie to be rejected")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: Name, Value: "abc"})
	if got, ok := Read(req); !ok || got != "abc" {
		t.Fatalf("Read() = (%q, %v), want (%q, true)", got, ok, "abc")
	}
}

func TestWriteSetsHardenedCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rr := httptest.NewRecorder()
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	Write(rr, req, "sid-1", expires, requestmeta.SchemePolicy{TrustForwardedProto: true})

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != Name || cookie.Value != "sid-1" {
		t.Fatalf("cookie = %s=%s", cookie.Name, cookie.Value)
	}
	if !cookie.HttpOnly || !cookie.Secure || cookie.SameSite != http.SameSiteLaxMode || cookie.Path != "/" {
		t.Fatalf("cookie attributes = %+v", cookie)
	}
	if !cookie.Expires.Equal(expires) {
		t.Fatalf("Expires = %v, want %v", cookie.Expires, expires)
	}
}

func TestClearExpiresCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Clear(rr, httptest.NewRequest(http.MethodPost, "/logout", nil), requestmeta.SchemePolicy{})
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("cookies = %+v, want one expired cookie", cookies)
	}
	if cookies[0].Secure {
		t.Fatal("plain http clear set Secure")
	}
}

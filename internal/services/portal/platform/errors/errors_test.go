package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{err: nil, want: http.StatusOK},
		{err: Error{Kind: KindInvalidInput, Message: "bad"}, want: http.StatusBadRequest},
		{err: Error{Kind: KindUnauthorized, Message: "no"}, want: http.StatusUnauthorized},
		{err: Error{Kind: KindForbidden, Message: "no"}, want: http.StatusForbidden},
		{err: Error{Kind: KindUnavailable, Message: "down"}, want: http.StatusServiceUnavailable},
		{err: Error{Kind: KindNotFound, Message: "gone"}, want: http.StatusNotFound},
		{err: stderrors.New("plain"), want: http.StatusInternalServerError},
		{err: fmt.Errorf("wrapped: %w", Error{Kind: KindUnauthorized, Message: "no"}), want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestMessage(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("login: %w", Error{Kind: KindUnauthorized, Message: " Invalid credentials "})
	if got := Message(err); got != "Invalid credentials" {
		t.Fatalf("Message() = %q, want %q", got, "Invalid credentials")
	}
	if got := Message(stderrors.New("x")); got != "" {
		t.Fatalf("Message(untyped) = %q, want empty", got)
	}
}

func TestWrapUnwrapsCause(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("dial tcp: refused")
	err := Wrap(KindUnavailable, "", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause")
	}
	if err.Error() != cause.Error() {
		t.Fatalf("Error() = %q, want cause text", err.Error())
	}
	if KindOf(err) != KindUnavailable {
		t.Fatalf("KindOf() = %q, want %q", KindOf(err), KindUnavailable)
	}
}

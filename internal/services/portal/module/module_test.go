package module

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/maitri-healthcare/portal/internal/platform/requestctx"
)

func TestLogfTagsRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	deps := Dependencies{Logger: log.New(&buf, "", 0)}
	deps.Logf(requestctx.WithRequestID(context.Background(), "req-9"), "export csv: %v", "boom")
	if got := strings.TrimSpace(buf.String()); got != "export csv: boom request_id=req-9" {
		t.Fatalf("log line = %q", got)
	}

	buf.Reset()
	deps.Logf(context.Background(), "logout")
	if got := strings.TrimSpace(buf.String()); got != "logout request_id=-" {
		t.Fatalf("log line = %q, want placeholder id", got)
	}
}

func TestDisplayLocationDefaultsToUTC(t *testing.T) {
	t.Parallel()

	if got := (Dependencies{}).DisplayLocation(); got != time.UTC {
		t.Fatalf("DisplayLocation() = %v, want UTC", got)
	}
}

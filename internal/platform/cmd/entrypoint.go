// Package cmd holds startup helpers shared by the portal binaries.
package cmd

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/maitri-healthcare/portal/internal/platform/config"
	"github.com/maitri-healthcare/portal/internal/platform/otel"
	"github.com/maitri-healthcare/portal/internal/platform/timeouts"
)

// Binary names, used as the OTel service name and the log prefix.
const (
	ServicePortal      = "portal"
	ServiceSubmissions = "submissions"
)

// ParseConfig fills cfg from the optional dotenv file and the environment.
// Process variables win over dotenv values.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if err := config.LoadDefaultDotEnv(); err != nil {
		return err
	}
	return config.ParseEnv(cfg)
}

// ParseArgs applies command-line flags on top of env-derived defaults.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// LogPrefix returns the bracketed log prefix for a binary, e.g. "[PORTAL] ".
func LogPrefix(service string) string {
	return "[" + strings.ToUpper(strings.TrimSpace(service)) + "] "
}

// RunWithTelemetry installs tracing for service, runs fn and flushes pending
// spans before returning fn's error. Flush failures are only logged.
func RunWithTelemetry(ctx context.Context, service string, fn func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if fn == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer flush(service, shutdown)
	return fn(ctx)
}

func flush(service string, shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.TelemetryFlush)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Printf("%s: flush traces: %v", service, err)
	}
}

// Package main provides a CLI exporting filtered submissions as CSV.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	entrypoint "github.com/maitri-healthcare/portal/internal/platform/cmd"
	"github.com/maitri-healthcare/portal/internal/platform/config"

	submissionscmd "github.com/maitri-healthcare/portal/internal/cmd/submissions"
)

func main() {
	cfg, err := submissionscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSubmissions, func(ctx context.Context) error {
		return submissionscmd.Run(ctx, cfg, os.Stdout, os.Stderr)
	})
	if err != nil {
		config.Exitf("%v", err)
	}
}

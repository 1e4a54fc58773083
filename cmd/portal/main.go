// Package main starts the submissions portal web service.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	entrypoint "github.com/maitri-healthcare/portal/internal/platform/cmd"
	portalcmd "github.com/maitri-healthcare/portal/internal/cmd/portal"
)

func main() {
	log.SetPrefix(entrypoint.LogPrefix(entrypoint.ServicePortal))
	cfg, err := portalcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := portalcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}

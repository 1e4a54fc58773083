// Package timeouts collects the time limits shared by the portal binaries.
package timeouts

import "time"

const (
	// APIRequest caps one call to the remote submissions backend.
	APIRequest = 10 * time.Second

	// ReadHeader limits how long the HTTP server waits for request headers.
	ReadHeader = 5 * time.Second

	// Shutdown bounds graceful HTTP shutdown.
	Shutdown = 5 * time.Second

	// SessionStoreOpen caps session store startup (ping, migrations).
	SessionStoreOpen = 5 * time.Second

	// TelemetryFlush bounds the final span export on exit.
	TelemetryFlush = 5 * time.Second
)

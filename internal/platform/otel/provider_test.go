package otel_test

import (
	"context"
	"testing"

	"github.com/maitri-healthcare/portal/internal/platform/otel"
)

func TestSetupIsNoopWithoutEndpoint(t *testing.T) {
	t.Setenv(otel.EndpointEnv, "")
	t.Setenv(otel.EnabledEnv, "")
	t.Setenv(otel.SampleRatioEnv, "")

	shutdown, err := otel.Setup(context.Background(), "portal-test")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupIsNoopWhenDisabled(t *testing.T) {
	t.Setenv(otel.EndpointEnv, "http://localhost:4318")
	t.Setenv(otel.EnabledEnv, "FALSE")

	shutdown, err := otel.Setup(context.Background(), "portal-test")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address; nothing is exported before shutdown.
	t.Setenv(otel.EndpointEnv, "http://192.0.2.1:4318")
	t.Setenv(otel.EnabledEnv, "")
	t.Setenv(otel.SampleRatioEnv, "")

	shutdown, err := otel.Setup(context.Background(), "portal-test")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupRejectsBadSampleRatio(t *testing.T) {
	t.Setenv(otel.EndpointEnv, "http://192.0.2.1:4318")
	t.Setenv(otel.EnabledEnv, "")
	t.Setenv(otel.SampleRatioEnv, "")
	t.Setenv(otel.SampleRatioEnv, "2")

	if _, err := otel.Setup(context.Background(), "portal-test"); err == nil {
		t.Fatal("expected error for sample ratio above 1")
	}
}

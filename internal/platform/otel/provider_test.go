package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/citymap/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("CITYMAP_OTEL_ENDPOINT", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("CITYMAP_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("CITYMAP_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_RejectsInvalidEnabledFlag(t *testing.T) {
	t.Setenv("CITYMAP_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("CITYMAP_OTEL_ENABLED", "sometimes")

	if _, err := otel.Setup(context.Background(), "test-service"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSetupWithConfig_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address: nothing is exported.
	shutdown, err := otel.SetupWithConfig(context.Background(), "test-service", otel.Config{
		Endpoint: "http://192.0.2.1:4318",
		Enabled:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupWithConfig_NoopShutdownIgnoresCancelledContext(t *testing.T) {
	shutdown, err := otel.SetupWithConfig(context.Background(), "noop-test", otel.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

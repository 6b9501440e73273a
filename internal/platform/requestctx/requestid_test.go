package requestctx

import (
	"context"
	"testing"
)

func TestRequestIDFromContextRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), " req-42 ")
	got := RequestIDFromContext(ctx)
	if got != "req-42" {
		t.Fatalf("RequestIDFromContext = %q, want %q", got, "req-42")
	}
}

func TestRequestIDFromContextEmpty(t *testing.T) {
	got := RequestIDFromContext(context.Background())
	if got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestRequestIDFromContextNil(t *testing.T) {
	got := RequestIDFromContext(nil)
	if got != "" {
		t.Fatalf("expected empty string for nil context, got %q", got)
	}
}

func TestWithRequestIDNilContext(t *testing.T) {
	ctx := WithRequestID(nil, "req-99")
	if ctx == nil {
		t.Fatalf("expected non-nil context")
	}
	if got := RequestIDFromContext(ctx); got != "req-99" {
		t.Fatalf("RequestIDFromContext = %q, want %q", got, "req-99")
	}
}

package instrumentation

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestNewDefaults(t *testing.T) {
	inst, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if inst.config.ServiceName != DefaultServiceName {
		t.Errorf("ServiceName = %q, want %q", inst.config.ServiceName, DefaultServiceName)
	}
	if inst.config.ServiceVersion != DefaultServiceVersion {
		t.Errorf("ServiceVersion = %q, want %q", inst.config.ServiceVersion, DefaultServiceVersion)
	}
	if inst.Metrics() == nil {
		t.Error("Metrics() = nil, want non-nil holder")
	}
	if inst.MeterProvider() == nil {
		t.Error("MeterProvider() = nil")
	}
	if inst.TracerProvider() == nil {
		t.Error("TracerProvider() = nil")
	}
}

func TestNewEnabled(t *testing.T) {
	inst, err := New(Config{
		ServiceName:    "test-dapp",
		ServiceVersion: "1.2.3",
		Enabled:        true,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if inst.Metrics() == nil {
		t.Fatal("Metrics() = nil")
	}

	// Recording on every instrument must not panic regardless of provider.
	ctx := context.Background()
	inst.Metrics().ValidationsTotal.Add(ctx, 1)
	inst.Metrics().DigestsTotal.Add(ctx, 1)
	inst.Metrics().DigestDuration.Record(ctx, 0.5)
	inst.Metrics().RandomBytesGenerated.Add(ctx, 32)
	inst.Metrics().RateLimitExceeded.Add(ctx, 1)
	inst.Metrics().AuditEventsTotal.Add(ctx, 1)
}

func TestTracerAndMeterScopes(t *testing.T) {
	inst, err := New(Config{ServiceName: "test-dapp"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if tr := inst.Tracer("crypto"); tr == nil {
		t.Error("Tracer(crypto) = nil")
	}
	if m := inst.Meter("validate"); m == nil {
		t.Error("Meter(validate) = nil")
	}

	_, span := inst.Tracer("crypto").Start(context.Background(), "test-span")
	span.End()
}

func TestNewWithMeterProviderOverride(t *testing.T) {
	provider := sdkmetric.NewMeterProvider()
	inst, err := New(Config{
		ServiceName:   "test-dapp",
		MeterProvider: provider,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if inst.MeterProvider() != provider {
		t.Error("MeterProvider() did not return the supplied provider")
	}
	if inst.Metrics() == nil {
		t.Fatal("Metrics() = nil with provider override")
	}

	// Instruments created from the override must record without panicking.
	inst.Metrics().AuditEventsTotal.Add(context.Background(), 1)
}

func TestShutdownIdempotent(t *testing.T) {
	inst, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := context.Background()
	if err := inst.Shutdown(ctx); err != nil {
		t.Errorf("first Shutdown() error = %v", err)
	}
	if err := inst.Shutdown(ctx); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
}

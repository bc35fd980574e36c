package dapputil

import (
	"context"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/chainkit/dapp-utils/instrumentation"
)

var activeInstrumentation atomic.Pointer[instrumentation.Instrumentation]

// SetInstrumentation attaches OpenTelemetry instrumentation to the
// package-level helpers. Passing nil detaches it again. The helpers record
// nothing and allocate nothing when no instrumentation is set, so the
// default configuration stays zero-overhead.
//
// Example:
//
//	inst, err := instrumentation.New(instrumentation.Config{
//		ServiceName: "my-dapp",
//		Enabled:     true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	dapputil.SetInstrumentation(inst)
func SetInstrumentation(inst *instrumentation.Instrumentation) {
	activeInstrumentation.Store(inst)
}

func activeMetrics() *instrumentation.Metrics {
	if inst := activeInstrumentation.Load(); inst != nil {
		return inst.Metrics()
	}
	return nil
}

func recordValidation(ctx context.Context, kind string, valid bool) {
	if m := activeMetrics(); m != nil {
		m.ValidationsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String(instrumentation.AttrValidationKind, kind),
			attribute.Bool(instrumentation.AttrValidationValid, valid),
		))
	}
}

func recordDigest(ctx context.Context, elapsed time.Duration) {
	if m := activeMetrics(); m != nil {
		m.DigestsTotal.Add(ctx, 1)
		// Fractional milliseconds: a digest completes in microseconds,
		// so whole-millisecond resolution would always record zero.
		m.DigestDuration.Record(ctx, float64(elapsed.Nanoseconds())/1e6)
	}
}

func recordRandomBytes(ctx context.Context, n int) {
	if m := activeMetrics(); m != nil {
		m.RandomBytesGenerated.Add(ctx, int64(n))
	}
}

// startSpan opens a span on the attached tracer, or returns the ambient
// (no-op) span when instrumentation is not set.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if inst := activeInstrumentation.Load(); inst != nil {
		return inst.Tracer("crypto").Start(ctx, name)
	}
	return ctx, trace.SpanFromContext(ctx)
}

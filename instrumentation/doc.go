// Package instrumentation provides OpenTelemetry (OTEL) instrumentation for the dapp-utils library.
//
// This package enables observability for the validation and hashing helpers
// through:
//   - Metrics: counters and histograms for validations, digests, and randomness
//   - Traces: spans around the asynchronous digest path
//
// # Quick Start
//
//	import (
//		dapputil "github.com/chainkit/dapp-utils"
//		"github.com/chainkit/dapp-utils/instrumentation"
//	)
//
//	inst, err := instrumentation.New(instrumentation.Config{
//		ServiceName:    "my-dapp",
//		ServiceVersion: "1.0.0",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer inst.Shutdown(context.Background())
//
//	dapputil.SetInstrumentation(inst)
//
// When Enabled is false (the default), no-op providers are installed and
// recording has zero overhead.
package instrumentation

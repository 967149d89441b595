// Package tracing provides OpenTelemetry tracing for audit runs.
//
// Each run is one trace: an "audit.run" root span with "audit.load",
// "audit.evaluate" and "audit.export" children. Spans carry the run ID,
// row counts and the report path. Spans are exported over OTLP gRPC when
// telemetry.tracing.enabled is set; otherwise a noop tracer is used.
//
//	tracer, err := tracing.New(&cfg.Telemetry.Tracing, version)
//	if err != nil {
//	    return err
//	}
//	defer tracer.Shutdown(context.Background())
//
//	ctx, span := tracer.Start(ctx, tracing.SpanRun)
//	defer span.End()
package tracing

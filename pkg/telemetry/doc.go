// Package telemetry groups the auditor's observability packages.
//
//   - logging: structured slog logging with run, table and trace fields
//   - metrics: Prometheus counters and gauges for audit runs
//   - tracing: OpenTelemetry spans for each audit run
//   - health: liveness and readiness checks for the watch session
//
// Each subpackage is configured from the telemetry section of the
// configuration file and can be used on its own.
package telemetry

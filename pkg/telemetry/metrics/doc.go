// Package metrics provides Prometheus metrics for audit runs.
//
// # Metrics
//
//   - runs_total{outcome}: runs that produced a report ("ok") or failed ("error")
//   - run_duration_seconds: run duration histogram
//   - rows_total{status}: audited rows by overall status
//   - check_failures_total{check}: rows failing the category, template, header or value check
//   - template_rows_total{template,status}: rows by declared template, capped in cardinality
//   - master_entries{master}, master_warnings: size of the last master index
//
// All names carry the configured namespace and subsystem prefix
// (catalogqc_auditor_ by default).
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	start := time.Now()
//	report, err := eng.Run(inputs)
//	if err != nil {
//		collector.RecordRunError(time.Since(start))
//	} else {
//		collector.RecordRun(report, time.Since(start))
//	}
//	http.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())
package metrics

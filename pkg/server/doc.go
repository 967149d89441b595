// Package server serves the watch-mode status endpoints: Prometheus
// metrics on the configured path plus the /health, /ready and /version
// probes.
//
//	srv := server.New(server.Config{
//	    ListenAddress: cfg.Telemetry.Metrics.ListenAddress,
//	    MetricsPath:   cfg.Telemetry.Metrics.Path,
//	}, collector.Handler(), checker, logger)
//	if err := srv.Listen(); err != nil {
//	    return err
//	}
//	go srv.Serve(ctx)
//
// Listen binds synchronously so address errors surface before the first
// audit; Serve blocks until ctx is cancelled and then shuts down gracefully.
package server

// Package health provides liveness and readiness probes for watch mode.
//
// Liveness (/health) always answers ok while the process runs. Readiness
// (/ready) aggregates registered checks; the RunTracker check keeps the
// auditor unready until an audit completes and while the latest audit
// failed.
//
//	checker := health.New(2 * time.Second)
//	runs := health.NewRunTracker()
//	checker.RegisterCheck("last_run", runs.Check)
//	health.Register(mux, checker, version, commit, buildDate)
package health

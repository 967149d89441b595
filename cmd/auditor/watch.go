package main

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"catalogqc/auditor/pkg/cli"
	"catalogqc/auditor/pkg/config"
	"catalogqc/auditor/pkg/server"
	"catalogqc/auditor/pkg/telemetry/health"
	"catalogqc/auditor/pkg/telemetry/logging"
	"catalogqc/auditor/pkg/telemetry/metrics"
	"catalogqc/auditor/pkg/telemetry/tracing"
	"catalogqc/auditor/pkg/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-audit whenever an input file changes",
	Long: `Audit once, then watch the six input files and the configuration file and
re-audit after each burst of changes until interrupted.

When telemetry.metrics.listen_address is set, Prometheus metrics and the
/health, /ready and /version probes are served on that address. /ready
answers 503 until an audit succeeds and while the latest audit failed.

Examples:
  # Watch the current directory
  auditor watch

  # Watch with metrics on :9100
  AUDITOR_TELEMETRY_METRICS_LISTEN_ADDRESS=:9100 auditor watch`,
	Args: cobra.NoArgs,
	RunE: watchAudit,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addInputFlags(watchCmd)

	watchCmd.Flags().StringVarP(&runFlags.out, "out", "o", "", "override report output directory")
	watchCmd.Flags().StringVar(&runFlags.format, "format", "", "override report format (csv, json)")
	watchCmd.Flags().BoolVar(&runFlags.strictDelimiters, "strict-delimiters", false, "flag spaces around multi-value pipes")
	watchCmd.Flags().StringVar(&runFlags.output, "output", "text", "summary output format: text, json")
}

func watchAudit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return err
	}

	formatter, err := cli.NewFormatter(cli.OutputFormat(runFlags.output))
	if err != nil {
		return cli.NewConfigError("output", err.Error())
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx, stop := cli.SetupSignalHandler()
	defer stop()

	s, err := newWatchSession(cmd, cfg, logger, formatter, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := s.Run(ctx); err != nil {
		return cli.NewCommandError("watch", err)
	}
	return nil
}

// watchSession re-runs audits on input changes and publishes their outcome
// to metrics and readiness.
type watchSession struct {
	cmd       *cobra.Command
	cfgPath   string
	logger    *logging.Logger
	formatter cli.Formatter
	out       io.Writer

	collector *metrics.Collector
	tracer    *tracing.Tracer
	checker   *health.Checker
	runs      *health.RunTracker

	// mu serializes audits; debounced callbacks may overlap.
	mu      sync.Mutex
	cfg     *config.Config
	auditor *auditor
}

func newWatchSession(cmd *cobra.Command, cfg *config.Config, logger *logging.Logger, formatter cli.Formatter, out io.Writer) (*watchSession, error) {
	tracer, err := newTracer(cfg)
	if err != nil {
		return nil, err
	}
	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, prometheus.NewRegistry())
	a, err := newAuditor(cfg, logger, collector, tracer)
	if err != nil {
		return nil, err
	}

	checker := health.New(2 * time.Second)
	runs := health.NewRunTracker()
	checker.RegisterCheck("last_run", runs.Check)

	return &watchSession{
		cmd:       cmd,
		cfgPath:   configPath(cmd),
		logger:    logger,
		formatter: formatter,
		out:       out,
		collector: collector,
		tracer:    tracer,
		checker:   checker,
		runs:      runs,
		cfg:       cfg,
		auditor:   a,
	}, nil
}

// Run audits once and then watches until ctx is cancelled.
func (s *watchSession) Run(ctx context.Context) error {
	defer shutdownTracer(s.tracer, s.logger)

	if addr := s.cfg.Telemetry.Metrics.ListenAddress; addr != "" {
		srv, err := s.startServer(ctx, addr)
		if err != nil {
			return err
		}
		s.logger.Info("Serving status endpoints", "address", srv.Addr())
	}

	if err := s.audit(ctx); err != nil {
		return err
	}

	fw, err := watch.NewFileWatcher(s.watchConfig(), s.logger.Slog())
	if err != nil {
		return err
	}
	defer func() { _ = fw.Stop() }()

	return fw.Watch(ctx, s.onChange)
}

func (s *watchSession) startServer(ctx context.Context, addr string) (*server.Server, error) {
	var metricsHandler = s.collector.Handler()
	if !s.cfg.Telemetry.Metrics.Enabled {
		metricsHandler = nil
	}
	srv := server.New(server.Config{
		ListenAddress: addr,
		MetricsPath:   s.cfg.Telemetry.Metrics.Path,
		Version:       Version,
		Commit:        GitCommit,
		BuildDate:     BuildDate,
	}, metricsHandler, s.checker, s.logger.Slog())
	if err := srv.Listen(); err != nil {
		return nil, err
	}
	go func() {
		if err := srv.Serve(ctx); err != nil {
			s.logger.Error("Status server failed", "error", err)
		}
	}()
	return srv, nil
}

// watchConfig lists the input files plus the configuration file. The
// watched set is fixed for the session.
func (s *watchSession) watchConfig() *watch.Config {
	paths := filesFromConfig(s.cfg).Paths(s.cfg.Inputs.Dir)
	extensions := append([]string(nil), s.cfg.Watch.Extensions...)
	if s.cfgPath != "" {
		paths = append(paths, s.cfgPath)
		if len(extensions) > 0 {
			extensions = append(extensions, filepath.Ext(s.cfgPath))
		}
	}
	return &watch.Config{
		Paths:      paths,
		Debounce:   s.cfg.Watch.Debounce,
		Extensions: extensions,
	}
}

func (s *watchSession) onChange(ctx context.Context, changed []string) error {
	if s.configChanged(changed) {
		s.reload()
	}
	return s.audit(ctx)
}

func (s *watchSession) configChanged(changed []string) bool {
	if s.cfgPath == "" {
		return false
	}
	abs, err := filepath.Abs(s.cfgPath)
	if err != nil {
		return false
	}
	for _, c := range changed {
		if c == abs {
			return true
		}
	}
	return false
}

// reload swaps in the changed configuration. Input paths keep their
// startup values; a broken file keeps the previous configuration.
func (s *watchSession) reload() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := config.ReloadConfig(s.cfgPath); err != nil {
		s.logger.Error("Configuration reload failed, keeping previous configuration", "error", err)
		return
	}
	next := config.GetConfig()
	next.Inputs = s.cfg.Inputs
	if err := applyFlagOverrides(s.cmd, next); err != nil {
		s.logger.Error("Reloaded configuration rejected", "error", err)
		return
	}
	a, err := newAuditor(next, s.logger, s.collector, s.tracer)
	if err != nil {
		s.logger.Error("Reloaded configuration rejected", "error", err)
		return
	}
	s.cfg = next
	s.auditor = a
	s.logger.Info("Configuration reloaded", "path", s.cfgPath)
}

// audit runs one audit and prints its summary. Failures are logged and
// reported through readiness; they never stop the session.
func (s *watchSession) audit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary, err := s.auditor.Run(ctx)
	if err != nil {
		s.runs.Record("", err)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		s.logger.Error("Audit failed", "error", err)
		return nil
	}
	s.runs.Record(summary.RunID, nil)
	return s.formatter.FormatTo(s.out, summary)
}

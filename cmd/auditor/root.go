package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"catalogqc/auditor/pkg/cli"
	"catalogqc/auditor/pkg/config"
	"catalogqc/auditor/pkg/telemetry/logging"
	"catalogqc/auditor/pkg/telemetry/tracing"
)

// defaultConfigFile is read when present and --config is not given.
const defaultConfigFile = "auditor.yaml"

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "auditor",
	Short: "Catalog content QC auditor",
	Long: `Auditor validates catalog content sheets against master data before upload.

Every content row is checked for:
  - a known top-level category
  - the template mapped to that category
  - the mandatory columns of the template
  - brand, color, size and allowed values of each template field

The content sheet is re-emitted with QC Header Check, QC Remarks and
QC Final Status columns appended.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with the command's status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// configPath returns the configuration file to read. A missing default file
// means built-in defaults; an explicitly named file must exist.
func configPath(cmd *cobra.Command) string {
	explicit := cmd != nil && cmd.Flags().Changed("config")
	if explicit || cfgFile != defaultConfigFile {
		return cfgFile
	}
	if _, err := os.Stat(cfgFile); errors.Is(err, fs.ErrNotExist) {
		return ""
	}
	return cfgFile
}

// loadConfig loads the configuration and installs it as the global instance.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfigWithEnvOverrides(configPath(cmd))
	if err != nil {
		return nil, cli.WrapConfigError(err)
	}
	config.SetConfig(cfg)
	return cfg, nil
}

// newLogger builds the command logger; --verbose forces debug level.
func newLogger(cfg *config.Config, w io.Writer) (*logging.Logger, error) {
	lc := logging.FromConfig(cfg.Telemetry.Logging, w)
	if verbose {
		lc.Level = "debug"
	}
	logger, err := logging.New(lc)
	if err != nil {
		return nil, cli.NewConfigError("telemetry.logging", err.Error())
	}
	return logger, nil
}

// newTracer builds the audit tracer from telemetry.tracing.
func newTracer(cfg *config.Config) (*tracing.Tracer, error) {
	tracer, err := tracing.New(&cfg.Telemetry.Tracing, Version)
	if err != nil {
		return nil, cli.NewConfigError("telemetry.tracing", err.Error())
	}
	return tracer, nil
}

// shutdownTracer flushes pending spans within the configured timeout.
func shutdownTracer(tracer *tracing.Tracer, logger *logging.Logger) {
	timeout := config.DefaultTracingTimeout
	if cfg := config.GetConfig(); cfg != nil && cfg.Telemetry.Tracing.Timeout > 0 {
		timeout = cfg.Telemetry.Tracing.Timeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := tracer.Shutdown(ctx); err != nil {
		logger.Warn("Failed to flush traces", "error", err)
	}
}

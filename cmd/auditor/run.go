package main

import (
	"github.com/spf13/cobra"

	"catalogqc/auditor/pkg/cli"
	"catalogqc/auditor/pkg/config"
)

// runOptions holds the flags shared by run, watch and masters.
type runOptions struct {
	dir              string
	brands           string
	colors           string
	sizes            string
	categories       string
	templateRules    string
	content          string
	out              string
	format           string
	strictDelimiters bool
	output           string
	progress         bool
}

var runFlags = runOptions{output: "text"}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Audit the content sheet once",
	Long: `Load the five masters and the content sheet, audit every content row and
write the report into the output directory.

With watch.enabled set in the configuration, run behaves like watch.

Row failures are reported, not returned: the command exits non-zero only
when an input cannot be read or the report cannot be written.

Examples:
  # Audit the CSV files in the current directory
  auditor run

  # Audit another directory, writing into ./out
  auditor run --dir ./upload --out ./out

  # Use a differently named content sheet and a JSON report
  auditor run --content week42.csv --format json

  # Machine-readable summary
  auditor run --output json`,
	Args: cobra.NoArgs,
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addInputFlags(runCmd)

	runCmd.Flags().StringVarP(&runFlags.out, "out", "o", "", "override report output directory")
	runCmd.Flags().StringVar(&runFlags.format, "format", "", "override report format (csv, json)")
	runCmd.Flags().BoolVar(&runFlags.strictDelimiters, "strict-delimiters", false, "flag spaces around multi-value pipes")
	runCmd.Flags().StringVar(&runFlags.output, "output", "text", "summary output format: text, json")
	runCmd.Flags().BoolVar(&runFlags.progress, "progress", false, "show a progress bar while loading inputs")
}

// addInputFlags registers the input file overrides shared by run, watch and masters.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runFlags.dir, "dir", "d", "", "override input directory")
	cmd.Flags().StringVar(&runFlags.brands, "brands", "", "override brands master file")
	cmd.Flags().StringVar(&runFlags.colors, "colors", "", "override colors master file")
	cmd.Flags().StringVar(&runFlags.sizes, "sizes", "", "override sizes master file")
	cmd.Flags().StringVar(&runFlags.categories, "categories", "", "override categories master file")
	cmd.Flags().StringVar(&runFlags.templateRules, "template-rules", "", "override template rules file")
	cmd.Flags().StringVar(&runFlags.content, "content", "", "override content sheet file")
}

// applyFlagOverrides copies set flags onto cfg and revalidates it.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	overrides := []struct {
		value string
		dst   *string
	}{
		{runFlags.dir, &cfg.Inputs.Dir},
		{runFlags.brands, &cfg.Inputs.Brands},
		{runFlags.colors, &cfg.Inputs.Colors},
		{runFlags.sizes, &cfg.Inputs.Sizes},
		{runFlags.categories, &cfg.Inputs.Categories},
		{runFlags.templateRules, &cfg.Inputs.TemplateRules},
		{runFlags.content, &cfg.Inputs.Content},
		{runFlags.out, &cfg.Report.OutputDir},
		{runFlags.format, &cfg.Report.Format},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.dst = o.value
		}
	}
	if cmd != nil && cmd.Flags().Changed("strict-delimiters") {
		cfg.Audit.StrictDelimiters = runFlags.strictDelimiters
	}

	if err := config.Validate(cfg); err != nil {
		return cli.WrapConfigError(err)
	}
	return nil
}

func runAudit(cmd *cobra.Command, args []string) error {
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

	if cfg.Watch.Enabled {
		ctx, stop := cli.SetupSignalHandler()
		defer stop()
		s, err := newWatchSession(cmd, cfg, logger, formatter, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if err := s.Run(ctx); err != nil {
			return cli.NewCommandError("run", err)
		}
		return nil
	}

	tracer, err := newTracer(cfg)
	if err != nil {
		return err
	}
	defer shutdownTracer(tracer, logger)

	// A one-shot run has no scrape endpoint; only the watch session keeps metrics.
	a, err := newAuditor(cfg, logger, nil, tracer)
	if err != nil {
		return err
	}
	if runFlags.progress {
		a.progress = cmd.ErrOrStderr()
	}

	ctx, stop := cli.SetupSignalHandler()
	defer stop()

	summary, err := a.Run(ctx)
	if err != nil {
		return cli.NewCommandError("run", err)
	}
	return formatter.FormatTo(cmd.OutOrStdout(), summary)
}

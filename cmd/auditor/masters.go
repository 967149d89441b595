package main

import (
	"github.com/spf13/cobra"

	"catalogqc/auditor/pkg/cli"
	"catalogqc/auditor/pkg/qc/master"
	"catalogqc/auditor/pkg/qc/sheet"
)

var mastersFlags struct {
	limit int
}

var mastersCmd = &cobra.Command{
	Use:   "masters",
	Short: "Inspect the master tables",
	Long: `Load the brand, color, size, category and template rule masters without
auditing content.

Examples:
  # Counts, templates and duplicate-rule warnings
  auditor masters stats

  # Closest colors to a misspelling
  auditor masters search colors "navy blu"`,
}

var mastersStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print master counts and warnings",
	Args:  cobra.NoArgs,
	RunE:  mastersStats,
}

var mastersSearchCmd = &cobra.Command{
	Use:       "search <brands|colors|sizes|categories> <term>",
	Short:     "Fuzzy-search a master",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{string(master.DatasetBrands), string(master.DatasetColors), string(master.DatasetSizes), string(master.DatasetCategories)},
	RunE:      mastersSearch,
}

func init() {
	rootCmd.AddCommand(mastersCmd)
	mastersCmd.AddCommand(mastersStatsCmd, mastersSearchCmd)

	addInputFlags(mastersStatsCmd)
	addInputFlags(mastersSearchCmd)
	for _, c := range []*cobra.Command{mastersStatsCmd, mastersSearchCmd} {
		c.Flags().StringVar(&runFlags.output, "output", "text", "output format: text, json")
	}
	mastersSearchCmd.Flags().IntVarP(&mastersFlags.limit, "limit", "n", 10, "maximum matches (0 for all)")
}

// loadIndex loads the masters named by the configuration and flags.
func loadIndex(cmd *cobra.Command) (*master.Index, cli.Formatter, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return nil, nil, err
	}
	formatter, err := cli.NewFormatter(cli.OutputFormat(runFlags.output))
	if err != nil {
		return nil, nil, cli.NewConfigError("output", err.Error())
	}

	src, err := sheet.LoadMasters(cfg.Inputs.Dir, filesFromConfig(cfg))
	if err != nil {
		return nil, nil, cli.NewCommandError("masters", err)
	}
	return master.Build(src), formatter, nil
}

func mastersStats(cmd *cobra.Command, args []string) error {
	idx, formatter, err := loadIndex(cmd)
	if err != nil {
		return err
	}
	return formatter.FormatTo(cmd.OutOrStdout(), &mastersSummary{
		Counts:    idx.Counts(),
		Templates: idx.Templates(),
		Warnings:  idx.Warnings(),
	})
}

func mastersSearch(cmd *cobra.Command, args []string) error {
	ds, err := master.ParseDataset(args[0])
	if err != nil {
		return err
	}
	idx, formatter, err := loadIndex(cmd)
	if err != nil {
		return err
	}
	return formatter.FormatTo(cmd.OutOrStdout(), &searchResult{
		Dataset: ds,
		Term:    args[1],
		Matches: idx.Search(ds, args[1], mastersFlags.limit),
	})
}

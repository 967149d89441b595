/*
Package cli provides command-line helpers for the auditor command.

Output Formatting:

Command results print as text or JSON. Results that know how to lay
themselves out as text implement TextWriter:

	formatter, err := cli.NewFormatter(cli.FormatJSON)
	if err != nil {
		return err
	}
	if err := formatter.FormatTo(os.Stdout, summary); err != nil {
		return err
	}

Progress Reporting:

	progress := cli.NewProgressReporter(os.Stderr, "Loading")
	progress.Start(6)
	progress.Update(3)
	progress.Finish()

Signal Handling:

	ctx, stop := cli.SetupSignalHandler()
	defer stop()

Exit Codes:

ExitCode maps a command error to the process exit status: configuration
problems exit with 2, every other failure with 1.
*/
package cli

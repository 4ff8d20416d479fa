/*
Package cli provides command-line utilities shared by the airgauge command.

Error Classification:

Errors are classified so the root command can map them to exit codes:
ConfigError for configuration and usage problems (exit 2), CommandError
for runtime failures such as unreachable devices or storage errors
(exit 3):

	if err := config.Load(path); err != nil {
		return cli.NewConfigError("", err.Error())
	}

Output Formatting:

Commands that support --json use a Formatter to emit machine-readable
output:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, reading); err != nil {
		return err
	}

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli

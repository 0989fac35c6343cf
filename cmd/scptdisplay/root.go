package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/scptdisplay/internal/cli"
	"github.com/aretw0/scptdisplay/internal/config"
	"github.com/aretw0/scptdisplay/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "scptdisplay",
	Short: "Display a notification, alert or dialog via AppleScript",
	Long: `scptdisplay renders a macOS notification, alert or dialog as AppleScript and runs it with osascript.

The result is printed as JSON (or as plain text on a terminal):
  result(string):        ok, cancelled or error.
  outcome(string):       confirmed, cancelled, interpreter_error, launch_failure or invalid_request.
  code(int or null):     exit status of osascript.
  error(string or null): stderr of osascript, or why the request was rejected.
  data(map or null):     the parsed result, null unless confirmed.

Exit status:
  0    confirmed (and cancelled, unless --cancel-exit-code says otherwise)
  1    osascript reported an error
  2    invalid request or flags
  127  osascript could not be started

Environment variables:
  SCPTDISPLAY_LOG     log level (debug, info, warn, error); logs go to stderr.
  SCPTDISPLAY_CONFIG  configuration file path.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitWith is replaced in tests.
var exitWith = os.Exit

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitWith(cli.ExitUsage)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("osascript", "osascript", "osascript command")
	rootCmd.PersistentFlags().String("config", "", "Configuration file (YAML or JSON); defaults to $SCPTDISPLAY_CONFIG or the user config dir")
	rootCmd.PersistentFlags().String("format", "", "Output format: json or text (default: text on a terminal, json otherwise)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Kill the prompt after this long (0 waits forever)")
	rootCmd.PersistentFlags().Int("cancel-exit-code", cli.ExitOK, "Exit status to use when the user cancels")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error or off (overrides $SCPTDISPLAY_LOG)")
}

// loadOptions merges the configuration file, the environment and the flags. Flags win.
func loadOptions(cmd *cobra.Command) (cli.Options, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cli.Options{}, err
	}

	if flags.Changed("osascript") {
		cfg.Interpreter, _ = flags.GetString("osascript")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
		if err := cfg.Validate(); err != nil {
			return cli.Options{}, err
		}
	}

	level := logging.LevelFromEnv(cfg.LogLevel)
	if flags.Changed("log-level") {
		level, _ = flags.GetString("log-level")
	}
	logger, err := logging.FromLevel(level)
	if err != nil {
		return cli.Options{}, err
	}

	timeout, _ := flags.GetDuration("timeout")
	cancelCode, _ := flags.GetInt("cancel-exit-code")

	return cli.Options{
		Config:         cfg,
		Timeout:        timeout,
		CancelExitCode: cancelCode,
		Stdout:         cmd.OutOrStdout(),
		Stderr:         cmd.ErrOrStderr(),
		Logger:         logger,
	}, nil
}

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/scptdisplay"
	"github.com/aretw0/scptdisplay/internal/adapters/mcp"
	"github.com/aretw0/scptdisplay/internal/cli"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Serves display_notification, display_alert and display_dialog as MCP tools over stdio,
so an AI agent can notify the local user or ask for confirmation or input.

Logs go to stderr so they never corrupt the JSON-RPC stream on stdout.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := loadOptions(cmd)
		if err != nil {
			slog.Error("Invalid configuration", "error", err)
			exitWith(cli.ExitUsage)
			return
		}
		logger := opts.Logger

		display := scptdisplay.New(
			scptdisplay.WithInterpreter(opts.Config.Interpreter),
			scptdisplay.WithLogger(logger),
			scptdisplay.WithRunnerOptions(opts.Config.RunnerOptions()...),
		)

		srv := mcp.NewServer(display, logger)
		logger.Info("Starting scptdisplay MCP Server (Stdio)...", "interpreter", display.Interpreter())
		if err := srv.ServeStdio(); err != nil {
			logger.Error("MCP Server execution failed", "error", err)
			exitWith(cli.ExitInterpreterError)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

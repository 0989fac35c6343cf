package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/scptdisplay"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of scptdisplay",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "scptdisplay version %s\n", strings.TrimSpace(scptdisplay.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = strings.TrimSpace(scptdisplay.Version)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/scptdisplay/internal/cli"
	"github.com/aretw0/scptdisplay/pkg/domain"
)

// runPrompt builds a request with build and shows it, exiting with the outcome's status.
func runPrompt(cmd *cobra.Command, args []string, build func(*cobra.Command, []string) (domain.Request, error)) {
	opts, err := loadOptions(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		exitWith(cli.ExitUsage)
		return
	}

	req, err := build(cmd, args)
	if err != nil {
		printer := cli.NewPrinter(cli.ResolveFormat(opts.Config.Format, opts.Stdout), opts.Stdout, opts.Stderr)
		if perr := printer.Print(cli.ErrorResponse(err)); perr != nil {
			opts.Logger.Error("Failed to write response", "error", perr)
		}
		exitWith(cli.ExitUsage)
		return
	}

	exitWith(cli.Show(cmd.Context(), opts, req))
}

// addButtonFlags registers the flags shared by alert and dialog.
func addButtonFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("buttons", nil, "A button name; repeat for up to three buttons, in display order")
	cmd.Flags().String("default-button", "", "The name or 1-based number of the default button")
	cmd.Flags().String("cancel-button", "", "The name or 1-based number of the cancel button")
	cmd.Flags().IntP("giving-up-after", "g", 0, "Seconds to wait before dismissing automatically (0 waits forever)")
}

type buttonFlags struct {
	buttons       []string
	defaultButton domain.ButtonRef
	cancelButton  domain.ButtonRef
	givingUpAfter int
}

func readButtonFlags(cmd *cobra.Command) buttonFlags {
	var bf buttonFlags
	flags := cmd.Flags()
	if flags.Changed("buttons") {
		bf.buttons, _ = flags.GetStringArray("buttons")
		if bf.buttons == nil {
			bf.buttons = []string{}
		}
	}
	if flags.Changed("default-button") {
		v, _ := flags.GetString("default-button")
		bf.defaultButton = domain.ParseButtonRef(v)
	}
	if flags.Changed("cancel-button") {
		v, _ := flags.GetString("cancel-button")
		bf.cancelButton = domain.ParseButtonRef(v)
	}
	bf.givingUpAfter, _ = flags.GetInt("giving-up-after")
	return bf
}

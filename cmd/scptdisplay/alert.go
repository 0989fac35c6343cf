package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/scptdisplay/pkg/domain"
)

var alertCmd = &cobra.Command{
	Use:     "alert TEXT",
	Aliases: []string{"a"},
	Short:   "Display a standard alert with up to three buttons",
	Long: `Displays a standardized alert containing a message, explanation, and from one to three buttons.

Without --buttons the alert has a single "OK" button.

Output data:
  alert(map):
    raw(string):                  raw stdout.
    record(map(string to string)): parsed stdout.
    button(string or null):        button returned.
    gave_up(bool):                 true if the alert was dismissed by --giving-up-after.`,
	Example: `  scptdisplay alert "Delete build cache?" --message "This cannot be undone." --as critical \
    --buttons Keep --buttons Delete --default-button Delete --cancel-button Keep`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runPrompt(cmd, args, buildAlert)
	},
}

func init() {
	rootCmd.AddCommand(alertCmd)
	addAlertFlags(alertCmd)
}

func addAlertFlags(cmd *cobra.Command) {
	cmd.Flags().String("message", "", "An explanatory message, displayed in small system font below the alert text")
	cmd.Flags().StringP("as", "t", "", "Alert type: informational, warning or critical (or an icon name: note, caution, stop)")
	addButtonFlags(cmd)
}

func buildAlert(cmd *cobra.Command, args []string) (domain.Request, error) {
	kind, _ := cmd.Flags().GetString("as")
	icon, err := parseAlertType(kind)
	if err != nil {
		return nil, err
	}

	bf := readButtonFlags(cmd)
	a := domain.Alert{
		Message:       args[0],
		Buttons:       bf.buttons,
		DefaultButton: bf.defaultButton,
		CancelButton:  bf.cancelButton,
		Icon:          icon,
		GivingUpAfter: bf.givingUpAfter,
	}
	a.Explanation, _ = cmd.Flags().GetString("message")
	return a, nil
}

// parseAlertType maps AppleScript alert types onto icons.
func parseAlertType(s string) (domain.IconKind, error) {
	switch strings.ToLower(s) {
	case "informational":
		return domain.IconNote, nil
	case "warning":
		return domain.IconCaution, nil
	case "critical":
		return domain.IconStop, nil
	}
	icon, err := domain.ParseIconKind(s)
	if err != nil {
		return domain.IconNone, fmt.Errorf("%w: unknown alert type %q (want informational, warning or critical)", domain.ErrInvalidRequest, s)
	}
	return icon, nil
}

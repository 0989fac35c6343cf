package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/scptdisplay/pkg/domain"
)

var dialogCmd = &cobra.Command{
	Use:     "dialog TEXT",
	Aliases: []string{"d"},
	Short:   "Display a dialog with buttons and an optional text field",
	Long: `Displays a dialog containing a message, one to three buttons, and optionally an icon and a field
in which the user can enter text.

Without --buttons the dialog shows "Cancel" and "OK", with "OK" as the default button.
The text field is only present when --default-answer is given; pass --default-answer "" for an empty field.

Output data:
  dialog(map):
    raw(string):                   raw stdout.
    record(map(string to string)): parsed stdout.
    text(string or null):          text returned, null without a text field.
    button(string or null):        button returned.
    gave_up(bool):                 true if the dialog was dismissed by --giving-up-after.`,
	Example: `  scptdisplay dialog "API token?" --default-answer "" --hidden-answer --title "Deploy"`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runPrompt(cmd, args, buildDialog)
	},
}

func init() {
	rootCmd.AddCommand(dialogCmd)
	addDialogFlags(dialogCmd)
}

func addDialogFlags(cmd *cobra.Command) {
	cmd.Flags().String("default-answer", "", "Initial contents of an editable text field; the field is absent unless this is given")
	cmd.Flags().Bool("hidden-answer", false, "Obscure typed text as in a password dialog (requires --default-answer)")
	cmd.Flags().StringP("title", "t", "", "The dialog window title")
	cmd.Flags().String("icon", "", "Icon: stop (0), note (1) or caution (2)")
	addButtonFlags(cmd)
}

func buildDialog(cmd *cobra.Command, args []string) (domain.Request, error) {
	flags := cmd.Flags()

	iconName, _ := flags.GetString("icon")
	icon, err := domain.ParseIconKind(iconName)
	if err != nil {
		return nil, err
	}

	bf := readButtonFlags(cmd)
	d := domain.Dialog{
		Message:       args[0],
		Buttons:       bf.buttons,
		DefaultButton: bf.defaultButton,
		CancelButton:  bf.cancelButton,
		Icon:          icon,
		GivingUpAfter: bf.givingUpAfter,
	}
	if flags.Changed("default-answer") {
		answer, _ := flags.GetString("default-answer")
		d.DefaultAnswer = &answer
	}
	d.HiddenAnswer, _ = flags.GetBool("hidden-answer")
	d.Title, _ = flags.GetString("title")
	return d, nil
}

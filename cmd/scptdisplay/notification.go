package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/scptdisplay/pkg/domain"
)

var notificationCmd = &cobra.Command{
	Use:     "notification [TEXT]",
	Aliases: []string{"n", "notify"},
	Short:   "Post a notification using the Notification Center",
	Long: `Posts a notification using the Notification Center, containing a title, subtitle, and body text,
and optionally playing a sound.

Output data:
  notification(empty map)`,
	Example: `  scptdisplay notify --title "Build" "All tests passed" --sound Glass`,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runPrompt(cmd, args, buildNotification)
	},
}

func init() {
	rootCmd.AddCommand(notificationCmd)
	addNotificationFlags(notificationCmd)
}

func addNotificationFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("title", "t", "", "The title of the notification (required)")
	cmd.Flags().StringP("subtitle", "s", "", "The subtitle of the notification")
	cmd.Flags().String("sound", "", "The name of a sound to play, e.g. a base name from Library/Sounds")
}

func buildNotification(cmd *cobra.Command, args []string) (domain.Request, error) {
	n := domain.Notification{}
	if len(args) > 0 {
		n.Message = args[0]
	}
	n.Title, _ = cmd.Flags().GetString("title")
	n.Subtitle, _ = cmd.Flags().GetString("subtitle")
	n.SoundName, _ = cmd.Flags().GetString("sound")
	return n, nil
}

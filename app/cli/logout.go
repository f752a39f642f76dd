package cli

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the session",
	Long: `Clear the persisted session immediately.

The server-side token is revoked in the background; a failed revocation is
logged and ignored, the local session is gone either way.`,
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	if container.Session.Current().Empty() {
		printer.Info("Not logged in")
		return nil
	}

	container.Session.Logout()
	printer.Success("Logged out")
	return nil
}

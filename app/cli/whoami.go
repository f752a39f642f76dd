package cli

import (
	"github.com/spf13/cobra"

	"fluxdevs/app/domain"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	if err := guard(domain.RouteDashboard); err != nil {
		return err
	}

	user := container.Session.Current().User

	printer.Print("%s <%s>", printer.Bold(user.FullName()), user.Email)
	printer.Print("Role:     %s", user.Role)
	printer.Print("Company:  %s", user.TenantName)
	if user.TenantIndustry != "" {
		printer.Print("Industry: %s", user.TenantIndustry)
	}
	return nil
}

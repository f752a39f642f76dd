package cli

import (
	"github.com/spf13/cobra"

	"fluxdevs/app/cli/output"
	"fluxdevs/app/domain"
)

var tenantsCmd = &cobra.Command{
	Use:   "tenants",
	Short: "Manage companies",
}

var tenantsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List companies one page at a time",
	RunE:  runTenantsList,
}

var tenantsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a company",
	Args:  cobra.ExactArgs(1),
	RunE:  runTenantsCreate,
}

var tenantsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a company",
	Args:  cobra.ExactArgs(1),
	RunE:  runTenantsUpdate,
}

var tenantsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a company",
	Args:  cobra.ExactArgs(1),
	RunE:  runTenantsDelete,
}

func init() {
	rootCmd.AddCommand(tenantsCmd)
	tenantsCmd.AddCommand(tenantsListCmd, tenantsCreateCmd, tenantsUpdateCmd, tenantsDeleteCmd)

	tenantsListCmd.Flags().Int("page", 1, "page number")
	tenantsCreateCmd.Flags().String("industry", "", "company industry")
	tenantsUpdateCmd.Flags().String("name", "", "new company name")
	tenantsUpdateCmd.Flags().String("industry", "", "new company industry")
}

func runTenantsList(cmd *cobra.Command, args []string) error {
	if err := guard(domain.RouteTenants); err != nil {
		return err
	}

	page, _ := cmd.Flags().GetInt("page")
	ctx, cancel := commandContext()
	defer cancel()

	result, err := container.Directory.Tenants(ctx, page)
	if err != nil {
		return err
	}

	table := output.NewTable([]string{"ID", "Name", "Industry", "Status"})
	for _, t := range result.Items {
		table.AddRow([]string{t.ID, t.Name, t.Industry, string(t.Status)})
	}
	table.Render()
	printPageHint(page, *result)
	return nil
}

func runTenantsCreate(cmd *cobra.Command, args []string) error {
	if err := guard(domain.RouteTenants); err != nil {
		return err
	}

	industry, _ := cmd.Flags().GetString("industry")
	if industry == "" {
		industry = prompt("Industry: ")
	}

	ctx, cancel := commandContext()
	defer cancel()

	tenant, err := container.Directory.CreateTenant(ctx, args[0], industry)
	if err != nil {
		return err
	}
	printer.Success("Company %s created (%s)", printer.Bold(tenant.Name), tenant.ID)
	return nil
}

func runTenantsUpdate(cmd *cobra.Command, args []string) error {
	if err := guard(domain.RouteTenants); err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	industry, _ := cmd.Flags().GetString("industry")

	ctx, cancel := commandContext()
	defer cancel()

	tenant, err := container.Directory.UpdateTenant(ctx, args[0], name, industry)
	if err != nil {
		return err
	}
	printer.Success("Company %s updated", printer.Bold(tenant.Name))
	return nil
}

func runTenantsDelete(cmd *cobra.Command, args []string) error {
	if err := guard(domain.RouteTenants); err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	if err := container.Directory.DeleteTenant(ctx, args[0]); err != nil {
		return err
	}
	printer.Success("Company %s deleted", args[0])
	return nil
}

// printPageHint shows how to reach the neighboring pages.
func printPageHint[T any](page int, result domain.Page[T]) {
	printer.Print("Page %d of %d record(s) total", page, result.Meta.Count)
	if result.HasNext() {
		printer.Info("More results: rerun with --page %d", page+1)
	}
}

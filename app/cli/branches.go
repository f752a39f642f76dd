package cli

import (
	"github.com/spf13/cobra"

	"fluxdevs/app/cli/output"
	"fluxdevs/app/domain"
)

var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "Manage branches",
}

var branchesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List branches one page at a time",
	RunE:  runBranchesList,
}

var branchesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a branch",
	Args:  cobra.ExactArgs(1),
	RunE:  runBranchesCreate,
}

func init() {
	rootCmd.AddCommand(branchesCmd)
	branchesCmd.AddCommand(branchesListCmd, branchesCreateCmd)

	branchesListCmd.Flags().Int("page", 1, "page number")
	branchesCreateCmd.Flags().String("location", "", "branch location")
}

func runBranchesList(cmd *cobra.Command, args []string) error {
	if err := guard(domain.RouteBranches); err != nil {
		return err
	}

	page, _ := cmd.Flags().GetInt("page")
	ctx, cancel := commandContext()
	defer cancel()

	result, err := container.Directory.Branches(ctx, page)
	if err != nil {
		return err
	}

	table := output.NewTable([]string{"ID", "Name", "Location"})
	for _, b := range result.Items {
		table.AddRow([]string{b.ID, b.Name, b.Location})
	}
	table.Render()
	printPageHint(page, *result)
	return nil
}

func runBranchesCreate(cmd *cobra.Command, args []string) error {
	if err := guard(domain.RouteBranches); err != nil {
		return err
	}

	location, _ := cmd.Flags().GetString("location")

	ctx, cancel := commandContext()
	defer cancel()

	branch, err := container.Directory.CreateBranch(ctx, args[0], location)
	if err != nil {
		return err
	}
	printer.Success("Branch %s created (%s)", printer.Bold(branch.Name), branch.ID)
	return nil
}

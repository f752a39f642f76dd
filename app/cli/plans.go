package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"fluxdevs/app/cli/output"
	"fluxdevs/app/domain"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Browse billing plans",
}

var plansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available plans",
	RunE:  runPlansList,
}

func init() {
	rootCmd.AddCommand(plansCmd)
	plansCmd.AddCommand(plansListCmd)
}

func runPlansList(cmd *cobra.Command, args []string) error {
	if err := guard(domain.RoutePlans); err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	plans, err := container.Directory.Plans(ctx)
	if err != nil {
		return err
	}

	table := output.NewTable([]string{"ID", "Name", "Price", "Period", "Users", "Branches"})
	for _, p := range plans {
		table.AddRow([]string{
			p.ID,
			p.Name,
			p.Price,
			string(p.BillingPeriod),
			strconv.Itoa(p.MaxUsers),
			strconv.Itoa(p.MaxBranches),
		})
	}
	table.Render()
	return nil
}

package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"fluxdevs/app/cli/output"
	"fluxdevs/app/domain"
)

var subscriptionsCmd = &cobra.Command{
	Use:     "subscriptions",
	Aliases: []string{"subs"},
	Short:   "Browse subscriptions",
}

var subscriptionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscriptions one page at a time",
	RunE:  runSubscriptionsList,
}

func init() {
	rootCmd.AddCommand(subscriptionsCmd)
	subscriptionsCmd.AddCommand(subscriptionsListCmd)

	subscriptionsListCmd.Flags().Int("page", 1, "page number")
}

func runSubscriptionsList(cmd *cobra.Command, args []string) error {
	if err := guard(domain.RouteSubscriptions); err != nil {
		return err
	}

	page, _ := cmd.Flags().GetInt("page")
	ctx, cancel := commandContext()
	defer cancel()

	result, err := container.Directory.Subscriptions(ctx, page)
	if err != nil {
		return err
	}

	table := output.NewTable([]string{"ID", "Plan", "Status", "Ends", "Days left"})
	for _, s := range result.Items {
		table.AddRow([]string{
			s.ID,
			s.Plan.Name,
			string(s.Status),
			s.EndDate.Format("2006-01-02"),
			strconv.Itoa(s.RemainingDays),
		})
	}
	table.Render()
	printPageHint(page, *result)
	return nil
}

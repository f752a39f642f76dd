package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"fluxdevs/app/cli/output"
	"fluxdevs/app/domain"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Set up your company and pick a plan",
	Long: `Walk through company onboarding: create your company, choose a plan
and complete payment.

The wizard moves forward only on confirmed server responses; a failed step
leaves you where you were so you can retry.

Examples:
  fluxdevs onboard
  fluxdevs onboard --name "Acme Ltd" --industry Finance`,
	RunE: runOnboard,
}

func init() {
	rootCmd.AddCommand(onboardCmd)

	onboardCmd.Flags().String("name", "", "company name")
	onboardCmd.Flags().String("industry", "", "company industry")
	onboardCmd.Flags().Bool("auto-renew", false, "renew the subscription automatically")
}

func runOnboard(cmd *cobra.Command, args []string) error {
	if err := guard(domain.RouteOnboarding); err != nil {
		return err
	}

	flow := container.Onboarding
	ctx, cancel := commandContext()
	defer cancel()

	// Step 1: company details.
	name, _ := cmd.Flags().GetString("name")
	industry, _ := cmd.Flags().GetString("industry")
	if name == "" {
		name = prompt("Company name: ")
	}
	if industry == "" {
		industry = prompt("Industry: ")
	}

	availability, err := flow.Names().CheckNow(ctx, name, industry)
	if err != nil {
		return err
	}
	printer.Print("%s %s", printer.AvailabilityBadge(availability.String()), name)
	if availability == domain.AvailabilityTaken {
		return domain.ErrNameTaken
	}

	tenant, err := flow.SubmitCompany(ctx, name, industry)
	if err != nil {
		return err
	}
	printer.Success("Company %s created", printer.Bold(tenant.Name))

	// Step 2: plan selection.
	plans, err := flow.BeginPlanSelection(ctx)
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		return fmt.Errorf("no plans available for your industry")
	}

	for {
		plan, err := choosePlan(plans)
		if err != nil {
			return err
		}

		autoRenew, _ := cmd.Flags().GetBool("auto-renew")
		initiation, err := flow.SelectPlan(ctx, plan, autoRenew)
		if err != nil {
			return err
		}

		if flow.Stage() != domain.StagePaymentPending {
			printer.Success("Plan %s activated", printer.Bold(plan.Name))
			break
		}

		// Step 3: provider checkout happens in the browser; the wizard
		// waits on the user's word.
		printer.Info("Complete the payment in your browser")
		if initiation.Reference != "" {
			printer.Print("Reference: %s", initiation.Reference)
		}

		answer := strings.ToLower(prompt("Type 'paid' once payment is complete, or 'cancel' to choose another plan: "))
		if answer == "cancel" {
			if err := flow.CancelPayment(); err != nil {
				return err
			}
			printer.Info("Payment cancelled, back to plan selection")
			continue
		}
		if err := flow.ConfirmPayment(); err != nil {
			return err
		}
		printer.Success("Plan %s confirmed", printer.Bold(plan.Name))
		break
	}

	route, err := flow.Finish()
	if err != nil {
		return err
	}
	printer.Success("Onboarding complete, welcome to %s", route)
	return nil
}

func choosePlan(plans []domain.Plan) (domain.Plan, error) {
	table := output.NewTable([]string{"#", "Plan", "Price", "Period", "Users", "Branches"})
	for i, p := range plans {
		table.AddRow([]string{
			strconv.Itoa(i + 1),
			p.Name,
			p.Price,
			string(p.BillingPeriod),
			strconv.Itoa(p.MaxUsers),
			strconv.Itoa(p.MaxBranches),
		})
	}
	table.Render()

	choice := prompt("Plan number: ")
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(plans) {
		return domain.Plan{}, fmt.Errorf("invalid plan choice: %s", choice)
	}
	return plans[idx-1], nil
}

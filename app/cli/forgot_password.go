package cli

import (
	"github.com/spf13/cobra"

	"fluxdevs/app/domain"
)

var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password <email>",
	Short: "Reset a forgotten password",
	Long: `Reset a password with a one-time code sent to your email.

The flow runs in one sitting: request the code, enter it, then choose a new
password.`,
	Args: cobra.ExactArgs(1),
	RunE: runForgotPassword,
}

func init() {
	rootCmd.AddCommand(forgotPasswordCmd)
}

func runForgotPassword(cmd *cobra.Command, args []string) error {
	if err := guard(domain.RouteForgotPassword); err != nil {
		return err
	}

	email := args[0]
	ctx, cancel := commandContext()
	defer cancel()

	if err := container.Session.RequestPasswordOTP(ctx, email); err != nil {
		return err
	}
	printer.Info("One-time code sent to %s", email)

	for {
		otp := prompt("Code (or 'resend'): ")
		if otp == "resend" {
			if err := container.Session.ResendPasswordOTP(ctx, email); err != nil {
				return err
			}
			printer.Info("Code re-sent")
			continue
		}
		if err := container.Session.VerifyPasswordOTP(ctx, email, otp); err != nil {
			printer.Error("%s", err.Error())
			continue
		}
		break
	}

	newPassword := prompt("New password: ")
	confirm := prompt("Confirm new password: ")
	if err := container.Session.SetNewPassword(ctx, email, newPassword, confirm); err != nil {
		return err
	}

	printer.Success("Password updated, run 'fluxdevs login %s'", email)
	return nil
}

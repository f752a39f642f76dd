package cli

import (
	"github.com/spf13/cobra"

	"fluxdevs/app/domain"
	"fluxdevs/app/port"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new account",
	Long: `Register a new account with the identity service.

Signup does not log you in; run 'fluxdevs login' afterwards.

Example:
  fluxdevs signup --first-name Ada --last-name Obi --email ada@example.com`,
	RunE: runSignup,
}

func init() {
	rootCmd.AddCommand(signupCmd)

	signupCmd.Flags().String("first-name", "", "first name")
	signupCmd.Flags().String("last-name", "", "last name")
	signupCmd.Flags().String("email", "", "email address")
	signupCmd.Flags().String("phone", "", "phone number")
	signupCmd.Flags().String("username", "", "username (optional)")
}

func runSignup(cmd *cobra.Command, args []string) error {
	if err := guard(domain.RouteSignup); err != nil {
		return err
	}

	req := port.SignupRequest{}
	req.FirstName, _ = cmd.Flags().GetString("first-name")
	req.LastName, _ = cmd.Flags().GetString("last-name")
	req.Email, _ = cmd.Flags().GetString("email")
	req.PhoneNumber, _ = cmd.Flags().GetString("phone")
	req.Username, _ = cmd.Flags().GetString("username")

	if req.FirstName == "" {
		req.FirstName = prompt("First name: ")
	}
	if req.LastName == "" {
		req.LastName = prompt("Last name: ")
	}
	if req.Email == "" {
		req.Email = prompt("Email: ")
	}
	req.Password = prompt("Password: ")
	req.VerifyPassword = prompt("Confirm password: ")

	ctx, cancel := commandContext()
	defer cancel()

	user, err := container.Session.Signup(ctx, req)
	if err != nil {
		return err
	}

	printer.Success("Account created for %s", printer.Bold(user.Email))
	printer.Info("Run 'fluxdevs login %s' to sign in", user.Email)
	return nil
}

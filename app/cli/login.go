package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"fluxdevs/app/domain"
	"fluxdevs/app/usecase"
)

var loginCmd = &cobra.Command{
	Use:   "login [identifier]",
	Short: "Authenticate and persist the session",
	Long: `Authenticate against the identity service with an email or username.

The session survives restarts; run 'fluxdevs logout' to clear it.

Examples:
  fluxdevs login you@example.com
  fluxdevs login you@example.com --password -   # read password from stdin`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringP("password", "p", "", "password ('-' to read from stdin)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	if err := guard(domain.RouteLogin); err != nil {
		return err
	}

	var identifier string
	if len(args) > 0 {
		identifier = args[0]
	} else {
		identifier = prompt("Email or username: ")
	}

	password, _ := cmd.Flags().GetString("password")
	if password == "" || password == "-" {
		password = prompt("Password: ")
	}

	ctx, cancel := commandContext()
	defer cancel()

	user, err := container.Session.Login(ctx, identifier, password)
	if err != nil {
		return err
	}

	printer.Success("Logged in as %s", printer.Bold(user.Email))

	// Tell the user where the gate would send them next.
	decision := usecase.EvaluateGate(container.Session.GateInput(domain.RouteDashboard, time.Now()))
	if decision.Action == usecase.GateRedirect && decision.Target == domain.RouteOnboarding {
		printer.Info("Your company is not set up yet: run 'fluxdevs onboard'")
	}
	return nil
}

func prompt(label string) string {
	fmt.Fprint(os.Stderr, label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

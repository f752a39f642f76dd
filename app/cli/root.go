// Package cli contains the fluxdevs command-line front end. Each command
// stands in for a screen: the session gate runs before every command the
// same way it runs on every route change.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"fluxdevs/app/cli/output"
	"fluxdevs/app/config"
	"fluxdevs/app/di"
	"fluxdevs/app/domain"
	"fluxdevs/app/usecase"
	"fluxdevs/app/utils/logger"
)

var (
	cfgFile   string
	verbose   bool
	container *di.Container
	appLogger *slog.Logger
	printer   *output.Printer
	version   = "dev"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fluxdevs",
	Short: "Fluxdevs business management client",
	Long: `fluxdevs is the terminal client for the Fluxdevs business platform.

It manages your account session, walks new accounts through company
onboarding and plan selection, and browses tenants, branches, plans and
subscriptions.

Example usage:
  fluxdevs login you@example.com   # Authenticate and persist the session
  fluxdevs onboard                 # Set up your company and pick a plan
  fluxdevs tenants list            # Browse companies one page at a time
  fluxdevs logout                  # Clear the session`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if container != nil {
			return container.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .fluxdevs.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initApp loads configuration, wires the container and hydrates the session.
func initApp() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	appLogger, err = logger.New(level)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	printer = output.NewPrinter(true)

	container, err = di.NewContainer(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("initializing container: %w", err)
	}

	// Nothing renders before hydration completes; this is the CLI's
	// version of the gate's wait rule.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := container.Session.Hydrate(ctx); err != nil {
		return fmt.Errorf("hydrating session: %w", err)
	}

	return nil
}

// guard evaluates the session gate for the route a command stands in for.
// A redirect decision aborts the command and tells the user where to go.
func guard(route domain.Route) error {
	decision := usecase.EvaluateGate(container.Session.GateInput(route, time.Now()))

	switch decision.Action {
	case usecase.GateAllow:
		return nil
	case usecase.GateRedirect:
		switch decision.Target {
		case domain.RouteLogin:
			return fmt.Errorf("not logged in: run 'fluxdevs login' first")
		case domain.RouteOnboarding:
			return fmt.Errorf("company setup incomplete: run 'fluxdevs onboard' first")
		case domain.RouteDashboard:
			return fmt.Errorf("already logged in: run 'fluxdevs logout' first")
		default:
			return fmt.Errorf("not available here: go to %s", decision.Target)
		}
	default:
		return domain.ErrNotHydrated
	}
}

// commandContext returns the context used for a command's remote calls.
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

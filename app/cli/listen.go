package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"fluxdevs/app/domain"
)

var listenCallbackCmd = &cobra.Command{
	Use:   "listen-callback",
	Short: "Run the payment callback listener",
	Long: `Serve the payment provider's return URL locally.

The listener shows each payment outcome and, after a short delay, signals
the return to the dashboard. The outcome is display-only; it never changes
onboarding state. Stop with Ctrl+C.`,
	RunE: runListenCallback,
}

func init() {
	rootCmd.AddCommand(listenCallbackCmd)
}

func runListenCallback(cmd *cobra.Command, args []string) error {
	addr := container.Config.Payment.CallbackAddr

	errCh := make(chan error, 1)
	go func() {
		errCh <- container.Callback.Start(addr)
	}()

	printer.Info("Listening on http://%s/payment-callback", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event := <-container.Callback.Events():
			switch event.Result.Status {
			case domain.PaymentSuccess:
				printer.Success("Payment %s succeeded", event.Result.Reference)
			case domain.PaymentCancelled:
				printer.Warning("Payment %s cancelled", event.Result.Reference)
			case domain.PaymentProcessing:
				printer.Info("Payment %s still processing", event.Result.Reference)
			default:
				printer.Error("Payment %s failed", event.Result.Reference)
			}
			printer.Info("Returning to %s", event.Next)
		case err := <-errCh:
			return err
		case <-quit:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return container.Callback.Shutdown(ctx)
		}
	}
}

package callback

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"fluxdevs/app/domain"
)

// Event is emitted once per provider return. Next is always the dashboard:
// the return path is display-only and never feeds back into onboarding
// state, whatever the reported status.
type Event struct {
	Result domain.PaymentResult
	Next   domain.Route
}

// Server is the local HTTP listener standing in for the payment provider's
// return deep link. The provider redirects the browser to
// /payment-callback?status=...&reference=... after checkout; the server
// shows the outcome and, after a fixed delay, signals navigation to the
// dashboard.
type Server struct {
	echo   *echo.Echo
	logger *slog.Logger
	delay  time.Duration
	events chan Event
}

// NewServer creates a callback listener. delay is how long the outcome page
// lingers before the dashboard signal fires.
func NewServer(logger *slog.Logger, delay time.Duration) *Server {
	if delay <= 0 {
		delay = 3 * time.Second
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:   e,
		logger: logger,
		delay:  delay,
		events: make(chan Event, 1),
	}

	e.GET("/payment-callback", s.handleCallback)

	return s
}

// Handler exposes the HTTP handler behind the listener.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Events delivers one Event per provider return.
func (s *Server) Events() <-chan Event {
	return s.events
}

// Start blocks serving on addr until Shutdown.
func (s *Server) Start(addr string) error {
	err := s.echo.Start(addr)
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("callback listener: %w", err)
	}
	return nil
}

// Shutdown stops the listener gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleCallback(c echo.Context) error {
	result := domain.ParsePaymentCallback(c.QueryParams())

	s.logger.Info("payment callback received",
		slog.String("status", string(result.Status)),
		slog.String("reference", result.Reference),
	)

	time.AfterFunc(s.delay, func() {
		select {
		case s.events <- Event{Result: result, Next: domain.RouteDashboard}:
		default:
			// Nobody waiting; the signal is advisory.
		}
	})

	return c.HTML(http.StatusOK, outcomePage(result))
}

func outcomePage(result domain.PaymentResult) string {
	var headline string
	switch result.Status {
	case domain.PaymentSuccess:
		headline = "Payment successful"
	case domain.PaymentFailed:
		headline = "Payment failed"
	case domain.PaymentCancelled:
		headline = "Payment cancelled"
	default:
		headline = "Payment processing"
	}

	body := fmt.Sprintf("<h1>%s</h1>", headline)
	if result.Reference != "" {
		// The reference comes straight from the query string.
		body += fmt.Sprintf("<p>Reference: %s</p>", html.EscapeString(result.Reference))
	}
	body += "<p>Returning to your dashboard.</p>"
	return body
}

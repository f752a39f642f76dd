package callback_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluxdevs/app/callback"
	"fluxdevs/app/domain"
	"fluxdevs/app/utils/logger"
)

func newServer(t *testing.T, delay time.Duration) *callback.Server {
	t.Helper()
	log, err := logger.NewWithWriter("error", os.Stderr)
	require.NoError(t, err)
	return callback.NewServer(log, delay)
}

func get(t *testing.T, s *callback.Server, target string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return rec, string(body)
}

func TestServer_HandleCallback(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		wantHeadline string
		wantStatus   domain.PaymentStatus
		wantRef      string
	}{
		{
			name:         "successful payment",
			target:       "/payment-callback?status=success&reference=ref-1",
			wantHeadline: "Payment successful",
			wantStatus:   domain.PaymentSuccess,
			wantRef:      "ref-1",
		},
		{
			name:         "cancelled payment",
			target:       "/payment-callback?status=cancelled&reference=ref-2",
			wantHeadline: "Payment cancelled",
			wantStatus:   domain.PaymentCancelled,
			wantRef:      "ref-2",
		},
		{
			name:         "unknown status reads as processing",
			target:       "/payment-callback?status=weird",
			wantHeadline: "Payment processing",
			wantStatus:   domain.PaymentProcessing,
		},
		{
			name:         "missing status reads as success",
			target:       "/payment-callback?reference=ref-8",
			wantHeadline: "Payment successful",
			wantStatus:   domain.PaymentSuccess,
			wantRef:      "ref-8",
		},
		{
			name:         "reference falls back to trxref",
			target:       "/payment-callback?trxref=trx-9",
			wantHeadline: "Payment successful",
			wantStatus:   domain.PaymentSuccess,
			wantRef:      "trx-9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t, 10*time.Millisecond)

			rec, body := get(t, s, tt.target)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, body, tt.wantHeadline)
			if tt.wantRef != "" {
				assert.Contains(t, body, tt.wantRef)
			}

			select {
			case ev := <-s.Events():
				assert.Equal(t, tt.wantStatus, ev.Result.Status)
				assert.Equal(t, tt.wantRef, ev.Result.Reference)
				assert.Equal(t, domain.RouteDashboard, ev.Next)
			case <-time.After(time.Second):
				t.Fatal("no navigation event after callback")
			}
		})
	}
}

func TestServer_EscapesReference(t *testing.T) {
	s := newServer(t, 10*time.Millisecond)

	rec, body := get(t, s, "/payment-callback?status=success&reference="+url.QueryEscape(`<script>alert(1)</script>`))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;alert(1)&lt;/script&gt;")

	<-s.Events()
}

func TestServer_EventWaitsForDelay(t *testing.T) {
	s := newServer(t, 150*time.Millisecond)

	rec, _ := get(t, s, "/payment-callback?status=failed&reference=ref-3")
	assert.Equal(t, http.StatusOK, rec.Code)

	select {
	case <-s.Events():
		t.Fatal("event fired before the outcome page delay")
	case <-time.After(50 * time.Millisecond):
	}

	select {
	case ev := <-s.Events():
		assert.Equal(t, domain.PaymentFailed, ev.Result.Status)
		assert.Equal(t, domain.RouteDashboard, ev.Next)
	case <-time.After(time.Second):
		t.Fatal("event never fired")
	}
}

func TestServer_EventIsAdvisory(t *testing.T) {
	s := newServer(t, 5*time.Millisecond)

	// Two returns with nobody draining the channel: the second signal is
	// dropped rather than blocking the timer goroutine.
	get(t, s, "/payment-callback?status=success&reference=first")
	get(t, s, "/payment-callback?status=success&reference=second")

	time.Sleep(50 * time.Millisecond)

	ev := <-s.Events()
	assert.Equal(t, domain.RouteDashboard, ev.Next)

	select {
	case <-s.Events():
		t.Fatal("dropped signal was delivered")
	default:
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluxdevs/app/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fluxdevs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api/v1", cfg.Services.IdentityURL)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 10.0, cfg.HTTP.RequestsPer)
	assert.Equal(t, 500*time.Millisecond, cfg.Onboarding.NameCheckDebounce)
	assert.Equal(t, 3, cfg.Onboarding.MinNameLength)
	assert.Equal(t, "paystack", cfg.Payment.Provider)
	assert.Equal(t, "localhost:4280", cfg.Payment.CallbackAddr)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NotEmpty(t, cfg.Storage.Dir)
}

func TestLoad_FileOverrides(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
services:
  identity_url: https://id.fluxdevs.example/api/v1
http:
  timeout: 5s
onboarding:
  min_name_length: 2
payment:
  provider: flutterwave
logging:
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, "https://id.fluxdevs.example/api/v1", cfg.Services.IdentityURL)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 2, cfg.Onboarding.MinNameLength)
	assert.Equal(t, "flutterwave", cfg.Payment.Provider)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			name:     "identity URL cleared",
			contents: "services:\n  identity_url: \"\"\n",
			wantErr:  "identity_url is required",
		},
		{
			name:     "timeout below a second",
			contents: "http:\n  timeout: 100ms\n",
			wantErr:  "http.timeout must be at least 1s",
		},
		{
			name:     "unknown provider",
			contents: "payment:\n  provider: stripe\n",
			wantErr:  "invalid payment.provider",
		},
		{
			name:     "unknown log level",
			contents: "logging:\n  level: trace\n",
			wantErr:  "invalid logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.contents))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPaymentConfig_CallbackURL(t *testing.T) {
	local := config.PaymentConfig{AppScheme: "http", CallbackAddr: "localhost:4280"}
	assert.Equal(t, "http://localhost:4280/payment-callback", local.CallbackURL())

	unset := config.PaymentConfig{CallbackAddr: "localhost:4280"}
	assert.Equal(t, "http://localhost:4280/payment-callback", unset.CallbackURL())

	app := config.PaymentConfig{AppScheme: "fluxdevs"}
	assert.Equal(t, "fluxdevs://payment-callback", app.CallbackURL())
}

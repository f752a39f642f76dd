package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluxdevs/app/domain"
	"fluxdevs/app/driver/rest"
	"fluxdevs/app/gateway"
	"fluxdevs/app/utils/logger"
)

func newIdentityGateway(t *testing.T, handler http.Handler) (*gateway.IdentityGateway, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log, err := logger.NewWithWriter("error", os.Stderr)
	require.NoError(t, err)
	client, err := rest.NewClient(srv.URL, rest.Options{Token: func() string { return "abc" }}, log)
	require.NoError(t, err)

	return gateway.NewIdentityGateway(client, log), srv
}

func TestIdentityGateway_Login(t *testing.T) {
	t.Run("returns the session material", func(t *testing.T) {
		g, _ := newIdentityGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/user/login/", r.URL.Path)
			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "ada@example.com", payload["identifier"])

			w.Write([]byte(`{
				"access_token": "access-1",
				"refresh_token": "refresh-1",
				"user": {"email": "ada@example.com", "first_name": "Ada", "role": "owner"}
			}`))
		}))

		result, err := g.Login(context.Background(), "ada@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "access-1", result.AccessToken)
		assert.Equal(t, "refresh-1", result.RefreshToken)
		assert.Equal(t, "ada@example.com", result.User.Email)
	})

	t.Run("missing access token fails", func(t *testing.T) {
		g, _ := newIdentityGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"user": {"email": "ada@example.com", "role": "owner"}}`))
		}))

		_, err := g.Login(context.Background(), "ada@example.com", "secret")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("token without a usable user fails closed", func(t *testing.T) {
		g, _ := newIdentityGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"access_token": "access-1", "user": {"first_name": "Ada"}}`))
		}))

		_, err := g.Login(context.Background(), "ada@example.com", "secret")
		assert.ErrorIs(t, err, domain.ErrSessionInvalid)
	})

	t.Run("server rejection surfaces the body message", func(t *testing.T) {
		g, _ := newIdentityGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "Invalid email or password"}`))
		}))

		_, err := g.Login(context.Background(), "ada@example.com", "wrong")
		var apiErr *domain.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "Invalid email or password", apiErr.Message)
	})
}

func TestIdentityGateway_CheckTenantName(t *testing.T) {
	t.Run("acceptance means available", func(t *testing.T) {
		g, _ := newIdentityGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/tenant/check-tenant-name/", r.URL.Path)
			var payload domain.CreateTenantRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "Acme Ltd", payload.Name)
			assert.Equal(t, string(domain.TenantStatusActive), payload.Status)

			w.Write([]byte(`{}`))
		}))

		availability, err := g.CheckTenantName(context.Background(), "Acme Ltd", "Finance")
		require.NoError(t, err)
		assert.Equal(t, domain.AvailabilityAvailable, availability)
	})

	t.Run("rejection means taken, not an error", func(t *testing.T) {
		g, _ := newIdentityGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message": "Company name already exists"}`))
		}))

		availability, err := g.CheckTenantName(context.Background(), "Acme Ltd", "Finance")
		require.NoError(t, err)
		assert.Equal(t, domain.AvailabilityTaken, availability)
	})

	t.Run("transport failure stays an error", func(t *testing.T) {
		g, srv := newIdentityGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := g.CheckTenantName(context.Background(), "Acme Ltd", "Finance")
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

func TestIdentityGateway_Tenants(t *testing.T) {
	t.Run("list maps the page envelope", func(t *testing.T) {
		g, _ := newIdentityGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/tenant/", r.URL.Path)
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			w.Write([]byte(`{"count": 3, "previous": "http://x/tenant/?page=1", "results": [
				{"id": "t-1", "name": "Acme Ltd", "industry": "Finance", "status": "Active"}
			]}`))
		}))

		page, err := g.ListTenants(context.Background(), 2)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Acme Ltd", page.Items[0].Name)
		assert.True(t, page.HasPrevious())
		assert.False(t, page.HasNext())
	})

	t.Run("update patches the tenant resource", func(t *testing.T) {
		name := "New Name"
		g, _ := newIdentityGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/tenant/t-1/", r.URL.Path)
			w.Write([]byte(`{"id": "t-1", "name": "New Name"}`))
		}))

		tenant, err := g.UpdateTenant(context.Background(), "t-1", domain.TenantUpdates{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "New Name", tenant.Name)
	})

	t.Run("delete targets the tenant resource", func(t *testing.T) {
		var gotMethod, gotPath string
		g, _ := newIdentityGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		}))

		require.NoError(t, g.DeleteTenant(context.Background(), "t-1"))
		assert.Equal(t, http.MethodDelete, gotMethod)
		assert.Equal(t, "/tenant/t-1/", gotPath)
	})
}

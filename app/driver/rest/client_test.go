package rest_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluxdevs/app/domain"
	"fluxdevs/app/driver/rest"
	"fluxdevs/app/utils/logger"
)

type echoPayload struct {
	Name string `json:"name"`
}

func newTestClient(t *testing.T, url string, token string) *rest.Client {
	t.Helper()
	log, err := logger.NewWithWriter("error", os.Stderr)
	require.NoError(t, err)

	opts := rest.Options{}
	if token != "" {
		opts.Token = func() string { return token }
	}
	client, err := rest.NewClient(url, opts, log)
	require.NoError(t, err)
	return client
}

func TestClient_Do(t *testing.T) {
	t.Run("sends JWT scheme credentials and decodes the body", func(t *testing.T) {
		var gotAuth, gotRequestID string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotRequestID = r.Header.Get("X-Request-ID")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"name":"Acme Ltd"}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv.URL, "abc")
		out, err := rest.Get[echoPayload](context.Background(), client, "/tenant/", "failed")
		require.NoError(t, err)

		assert.Equal(t, "Acme Ltd", out.Name)
		assert.Equal(t, "JWT abc", gotAuth)
		assert.NotEmpty(t, gotRequestID)
	})

	t.Run("no token means no Authorization header", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv.URL, "")
		_, err := rest.Get[echoPayload](context.Background(), client, "/user/login/", "failed")
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("rejection prefers the body message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Company name already exists"}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv.URL, "abc")
		err := client.Do(context.Background(), http.MethodPost, "/tenant/", nil, nil, "Failed to create company")

		var apiErr *domain.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "Company name already exists", apiErr.Message)
		assert.ErrorIs(t, err, domain.ErrRejected)
	})

	t.Run("rejection falls back to detail then the endpoint message", func(t *testing.T) {
		tests := []struct {
			name string
			body string
			want string
		}{
			{name: "detail field", body: `{"detail":"Not found."}`, want: "Not found."},
			{name: "empty body", body: ``, want: "Failed to load companies"},
			{name: "unparseable body", body: `<html>`, want: "Failed to load companies"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
					w.Write([]byte(tt.body))
				}))
				defer srv.Close()

				client := newTestClient(t, srv.URL, "abc")
				err := client.Do(context.Background(), http.MethodGet, "/tenant/", nil, nil, "Failed to load companies")

				var apiErr *domain.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, tt.want, apiErr.Message)
			})
		}
	})

	t.Run("transport failure becomes a connectivity message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse connections

		client := newTestClient(t, srv.URL, "abc")
		err := client.Do(context.Background(), http.MethodGet, "/tenant/", nil, nil, "failed")

		var apiErr *domain.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "Network error. Please check your connection.", apiErr.Message)
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

func TestGetPage(t *testing.T) {
	t.Run("maps the pagination envelope", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`{"count":12,"next":"http://x/tenant/?page=3","previous":"http://x/tenant/?page=1","results":[{"name":"Acme Ltd"},{"name":"Beta Co"}]}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv.URL, "abc")
		page, err := rest.GetPage[echoPayload](context.Background(), client, "/tenant/", 2, "failed")
		require.NoError(t, err)

		assert.Equal(t, "page=2", gotQuery)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, 12, page.Meta.Count)
		assert.True(t, page.HasNext())
		assert.True(t, page.HasPrevious())
	})

	t.Run("page numbers below one clamp to the first page", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`{"count":0,"results":[]}`))
		}))
		defer srv.Close()

		client := newTestClient(t, srv.URL, "abc")
		page, err := rest.GetPage[echoPayload](context.Background(), client, "/tenant/", 0, "failed")
		require.NoError(t, err)

		assert.Equal(t, "page=1", gotQuery)
		assert.Empty(t, page.Items)
		assert.False(t, page.HasNext())
	})
}

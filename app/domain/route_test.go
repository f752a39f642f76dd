package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fluxdevs/app/domain"
)

func TestRoute_Public(t *testing.T) {
	tests := []struct {
		route  domain.Route
		public bool
	}{
		{domain.RouteSignup, true},
		{domain.RouteLogin, true},
		{domain.RouteForgotPassword, true},
		{domain.RoutePaymentCallback, true},
		{domain.RouteOnboarding, false},
		{domain.RouteDashboard, false},
		{domain.RouteTenants, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.route), func(t *testing.T) {
			assert.Equal(t, tt.public, tt.route.Public())
		})
	}
}

func TestRoute_InDashboardGroup(t *testing.T) {
	tests := []struct {
		route domain.Route
		in    bool
	}{
		{domain.RouteDashboard, true},
		{domain.RouteTenants, true},
		{domain.RouteBranches, true},
		{domain.RouteSubscriptions, true},
		{domain.RoutePlans, true},
		{domain.RouteOnboarding, false},
		{domain.RouteLogin, false},
		{domain.Route("/dashboardish"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.route), func(t *testing.T) {
			assert.Equal(t, tt.in, tt.route.InDashboardGroup())
		})
	}
}

package domain

// Route identifies a screen in the application.
type Route string

const (
	RouteSignup          Route = "/"
	RouteLogin           Route = "/login"
	RouteForgotPassword  Route = "/forgot-password"
	RoutePaymentCallback Route = "/payment-callback"
	RouteOnboarding      Route = "/onboarding"
	RouteDashboard       Route = "/dashboard"
	RouteTenants         Route = "/dashboard/tenants"
	RouteBranches        Route = "/dashboard/branches"
	RouteSubscriptions   Route = "/dashboard/subscriptions"
	RoutePlans           Route = "/dashboard/plans"
)

// publicRoutes are reachable without a token.
var publicRoutes = map[Route]bool{
	RouteSignup:          true,
	RouteLogin:           true,
	RouteForgotPassword:  true,
	RoutePaymentCallback: true,
}

// Public reports whether the route is reachable without authentication.
func (r Route) Public() bool {
	return publicRoutes[r]
}

// InDashboardGroup reports whether the route belongs to the authenticated
// app area (the drawer/dashboard group).
func (r Route) InDashboardGroup() bool {
	if r == RouteDashboard {
		return true
	}
	const prefix = string(RouteDashboard) + "/"
	return len(r) > len(prefix) && string(r[:len(prefix)]) == prefix
}

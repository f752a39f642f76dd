package usecase

import (
	"time"

	"fluxdevs/app/domain"
	"fluxdevs/app/token"
)

// GateAction tells the caller what to do with the requested route.
type GateAction int

const (
	// GateWait means hydration is still in progress; render nothing and
	// re-evaluate once the store reports hydrated.
	GateWait GateAction = iota
	// GateAllow means the requested route may render.
	GateAllow
	// GateRedirect means navigate to Decision.Target instead.
	GateRedirect
)

func (a GateAction) String() string {
	switch a {
	case GateAllow:
		return "allow"
	case GateRedirect:
		return "redirect"
	default:
		return "wait"
	}
}

// GateInput is everything the gate looks at. It is a snapshot: the gate
// itself never reads shared state, so evaluation is a pure function of its
// input.
type GateInput struct {
	Hydrated bool
	Token    string
	User     *domain.User
	Route    domain.Route
	Now      time.Time
}

// Decision is the gate's verdict for one input.
type Decision struct {
	Action GateAction
	Target domain.Route
}

func allow() Decision {
	return Decision{Action: GateAllow}
}

func redirect(target domain.Route) Decision {
	return Decision{Action: GateRedirect, Target: target}
}

// EvaluateGate decides whether a route may render for the given session
// snapshot. The rules apply in a fixed order and the first match wins:
//
//  1. Not hydrated: wait.
//  2. No usable token: public routes render, everything else goes to login.
//  3. Token without a valid user record: broken session, go to login.
//  4. Valid user without a tenant: unprovisioned, go to onboarding.
//  5. Provisioned user outside the dashboard group: go to the dashboard.
//  6. Otherwise: render.
//
// A syntactically valid JWT whose exp has passed counts as no token at all,
// so a stale session lands on login rather than failing every API call.
// Evaluating the decision's outcome again yields the same or an allow
// decision, so redirect loops cannot form.
func EvaluateGate(in GateInput) Decision {
	if !in.Hydrated {
		return Decision{Action: GateWait}
	}

	tok := in.Token
	if tok != "" && token.Expired(tok, in.Now) {
		tok = ""
	}

	if tok == "" {
		if in.Route.Public() {
			return allow()
		}
		return redirect(domain.RouteLogin)
	}

	// Fail closed: a token with a missing or malformed user record is
	// treated as an invalid session, not as authenticated.
	if in.User == nil || in.User.Validate() != nil {
		return redirect(domain.RouteLogin)
	}

	if !in.User.Provisioned() {
		if in.Route != domain.RouteOnboarding {
			return redirect(domain.RouteOnboarding)
		}
		return allow()
	}

	if !in.Route.InDashboardGroup() {
		return redirect(domain.RouteDashboard)
	}

	return allow()
}

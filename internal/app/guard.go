package app

// RouteDecision says what to do with a workspace route request.
type RouteDecision int

const (
	RouteAllow RouteDecision = iota
	RouteRedirectLogin
)

func (d RouteDecision) String() string {
	if d == RouteAllow {
		return "allow"
	}
	return "redirect-login"
}

// GuardRoute admits workspace routes only when a session exists. The
// decision depends on nothing else, so the same input always produces
// the same answer.
func GuardRoute(hasSession bool) RouteDecision {
	if hasSession {
		return RouteAllow
	}
	return RouteRedirectLogin
}

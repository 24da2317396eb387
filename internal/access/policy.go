package access

import "github.com/paptec/pregador/internal/entitlement"

// Decision is the outcome of an access check.
type Decision struct {
	Allowed bool
	// RedirectTo is where the client should land instead, when not allowed.
	RedirectTo Screen
}

// allow and redirect to paywall, the only two outcomes.
var (
	decisionAllow   = Decision{Allowed: true}
	decisionPaywall = Decision{Allowed: false, RedirectTo: ScreenPaywall}
)

// CanEnter decides whether a device with the given entitlement may enter a
// screen. Open screens and the admin console are always reachable; the admin
// console enforces its own credential at the endpoint layer. Gated screens
// require an active trial or subscription.
func CanEnter(state entitlement.State, screen Screen) Decision {
	if Open(screen) || Administrative(screen) {
		return decisionAllow
	}
	if !Gated(screen) {
		// Unknown screen names are treated like gated content.
		if state.Allowed() {
			return decisionAllow
		}
		return decisionPaywall
	}
	if state.Allowed() {
		return decisionAllow
	}
	return decisionPaywall
}

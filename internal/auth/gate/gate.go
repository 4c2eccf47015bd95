// Package gate decides whether a request may reach the dashboard.
package gate

import "strings"

const (
	// ProtectedPrefix is the path namespace requiring authentication.
	ProtectedPrefix = "/dashboard"
	// DefaultPath is where authenticated users land when they revisit a
	// public entry page such as the sign-in form.
	DefaultPath = "/dashboard"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Allow lets the request through unchanged.
	Allow Decision = iota
	// Deny blocks the request; the caller is expected to send the user to
	// the sign-in page.
	Deny
	// Redirect sends the request to Outcome.Location instead.
	Redirect
)

// Outcome pairs a Decision with a redirect target when one applies.
type Outcome struct {
	Decision Decision
	Location string
}

// Decide maps authentication state and requested path to exactly one outcome.
func Decide(isAuthenticated bool, path string) Outcome {
	onDashboard := strings.HasPrefix(path, ProtectedPrefix)

	switch {
	case onDashboard && isAuthenticated:
		return Outcome{Decision: Allow}
	case onDashboard:
		return Outcome{Decision: Deny}
	case isAuthenticated:
		return Outcome{Decision: Redirect, Location: DefaultPath}
	default:
		return Outcome{Decision: Allow}
	}
}

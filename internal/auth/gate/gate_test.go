package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideDashboardAuthenticated(t *testing.T) {
	outcome := Decide(true, "/dashboard/invoices")
	assert.Equal(t, Allow, outcome.Decision)
}

func TestDecideDashboardAnonymous(t *testing.T) {
	outcome := Decide(false, "/dashboard/invoices")
	assert.Equal(t, Deny, outcome.Decision)
}

func TestDecidePublicAuthenticated(t *testing.T) {
	outcome := Decide(true, "/login")
	assert.Equal(t, Redirect, outcome.Decision)
	assert.Equal(t, "/dashboard", outcome.Location)
}

func TestDecidePublicAnonymous(t *testing.T) {
	outcome := Decide(false, "/login")
	assert.Equal(t, Allow, outcome.Decision)
}

func TestDecideIsTotal(t *testing.T) {
	paths := []string{"/", "/login", "/dashboard", "/dashboard/", "/dashboard/invoices", "/health"}
	for _, authed := range []bool{true, false} {
		for _, path := range paths {
			outcome := Decide(authed, path)
			switch outcome.Decision {
			case Allow, Deny:
				assert.Empty(t, outcome.Location, "auth=%v path=%s", authed, path)
			case Redirect:
				assert.NotEmpty(t, outcome.Location, "auth=%v path=%s", authed, path)
			default:
				t.Fatalf("unmapped decision for auth=%v path=%s", authed, path)
			}
		}
	}
}

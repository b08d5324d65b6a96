// Package authz defines the capability check invoked on mutating routes.
//
// Authorization is an external collaborator of this service: the backend
// asks "may this request exercise this capability?" and acts on the answer.
// The legacy system shipped an auth stub that was never wired to any route;
// instead of reproducing that dead code, routes here call an Authorizer so a
// real checker (sessions, JWTs, an upstream gateway) can be dropped in at
// bootstrap without touching handlers.
package authz

import (
	"net/http"

	"github.com/cumuna/clubhub/internal/app/system/respond"
)

// Authorizer answers capability checks for a request. Implementations must
// be safe for concurrent use.
type Authorizer interface {
	// Allow reports whether the request may exercise the named capability
	// (e.g. "blogs.write", "pdfs.delete").
	Allow(r *http.Request, capability string) bool
}

// AllowAll permits everything. It is the default until a real authorizer is
// configured, matching the open surface of the legacy system.
type AllowAll struct{}

// Allow always returns true.
func (AllowAll) Allow(*http.Request, string) bool { return true }

// Require wraps a handler chain with a capability check. Denied requests get
// a 403 envelope and never reach the handler.
func Require(az Authorizer, capability string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !az.Allow(r, capability) {
				respond.Error(w, http.StatusForbidden, "You don't have permission to do that.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

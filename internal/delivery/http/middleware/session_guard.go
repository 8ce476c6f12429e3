package middleware

import (
	"net/http"

	"facility-booking/pkg/response"
)

// RequireSession rejects anonymous requests. It must run after
// SessionMiddleware.Resolve, which puts the viewer in the context.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetViewerFromContext(r.Context()); !ok {
			response.Unauthorized(w, "No active session")
			return
		}

		next.ServeHTTP(w, r)
	})
}

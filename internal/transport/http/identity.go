package http

import (
	"net/http"

	"github.com/Theryu22/Wareed/internal/auth"
)

const userIDHeader = "X-User-ID"

// Identity copies the gateway-established caller id into the request
// context. Requests without the header stay anonymous; endpoints that need
// an identity reject them with auth_required.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := auth.WithUserID(r.Context(), r.Header.Get(userIDHeader))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package httpadapter

import (
	"context"
	"net/http"

	"ppc-console/internal/core/domain"
)

type callerKey struct{}

// callerMiddleware attaches the caller identity to every request under
// /api/v1. There is no real authentication yet: the identity comes from
// configuration, and this middleware is the single place a future auth
// layer has to replace.
func callerMiddleware(caller domain.Caller) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), callerKey{}, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func callerFrom(r *http.Request) domain.Caller {
	caller, _ := r.Context().Value(callerKey{}).(domain.Caller)
	return caller
}

package api

import (
	"context"
	"net/http"

	"imagevault/internal/interfaces"
	"imagevault/internal/model"
	"imagevault/internal/service"
)

type userKey struct{}

// APIKeyHeader carries the caller's API key on every authenticated request.
const APIKeyHeader = "X-API-Key"

// RequireAPIKey resolves the X-API-Key header to a user and stores it in the
// request context. Requests without a valid key are rejected with 401.
func RequireAPIKey(accounts interfaces.AccountService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := accounts.Authenticate(r.Context(), r.Header.Get(APIKeyHeader))
			if err != nil {
				respondWithError(w, err)
				return
			}

			// RealIP has already rewritten RemoteAddr when running behind the router.
			ctx := service.WithClientIP(r.Context(), r.RemoteAddr)
			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

// WithUser returns a copy of ctx carrying user, as RequireAPIKey does.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

func currentUser(r *http.Request) *model.User {
	user, _ := r.Context().Value(userKey{}).(*model.User)
	return user
}

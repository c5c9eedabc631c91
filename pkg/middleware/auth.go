package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/boutiklabs/boutik/pkg/auth"
	"github.com/boutiklabs/boutik/pkg/response"
)

// identityKey is the unexported context key for the authenticated email.
type identityKey struct{}

// EmailFromCtx returns the authenticated email attached by Authenticate.
func EmailFromCtx(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(identityKey{}).(string)
	return email, ok
}

// WithEmail stores an authenticated email in ctx. Exported for tests that
// exercise downstream middleware without a real token.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, identityKey{}, email)
}

// Authenticate gates a route on a bearer token.
//
// A missing Authorization header is 401; a present but invalid, expired or
// malformed token is 403. The 403 deliberately matches the insufficient-
// privilege status used further down the chain, keeping the historic
// contract where both surface the same way.
func Authenticate(issuer *auth.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				response.Message(w, http.StatusUnauthorized, "Accès interdit")
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")

			claims, err := issuer.Verify(token)
			if err != nil {
				response.Message(w, http.StatusForbidden, "Token invalide")
				return
			}

			ctx := WithEmail(r.Context(), claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

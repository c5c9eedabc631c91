// Package rbac holds the authorization predicates layered on top of
// middleware.Authenticate.
package rbac

import (
	"net/http"

	"github.com/boutiklabs/boutik/pkg/middleware"
	"github.com/boutiklabs/boutik/pkg/response"
)

// AdminOnly returns middleware that allows only the single administrator
// identity through. Single-tenant, single-admin: there is no role table,
// just one configured address. Requires middleware.Authenticate to have
// already attached the email to the context.
func AdminOnly(adminEmail string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := middleware.EmailFromCtx(r.Context())
			if !ok || email != adminEmail {
				response.Message(w, http.StatusForbidden, "Accès réservé à l'administrateur")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

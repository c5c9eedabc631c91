// Package routes wires the HTTP surface: public catalogue reads, the
// account/token endpoints, and the protected cart, wishlist and product
// mutation routes.
package routes

import (
	"github.com/boutiklabs/boutik/app/controllers"
	"github.com/boutiklabs/boutik/app/repositories"
	"github.com/boutiklabs/boutik/app/services"
	"github.com/boutiklabs/boutik/pkg/auth"
	"github.com/boutiklabs/boutik/pkg/metrics"
	"github.com/boutiklabs/boutik/pkg/middleware"
	"github.com/boutiklabs/boutik/pkg/rbac"
	"github.com/boutiklabs/boutik/pkg/router"
)

// Deps carries the explicitly owned collaborators of the HTTP layer.
// Everything is injected; there are no package-level mutable stores.
type Deps struct {
	Products   *services.ProductService
	Accounts   *services.AccountDirectory
	Issuer     *auth.Issuer
	Cart       *repositories.Registry
	Wishlist   *repositories.Registry
	AdminEmail string
}

// RegisterAPI mounts every route. Authorization policy: product mutations
// require a valid token AND the admin identity; cart and wishlist require
// a valid token; everything else is public.
func RegisterAPI(r *router.Router, deps Deps) error {
	productController := controllers.NewProductController(deps.Products)
	accountController := controllers.NewAccountController(deps.Accounts)
	cartController := controllers.NewCartController(deps.Cart)
	wishlistController := controllers.NewWishlistController(deps.Wishlist)

	graphqlController, err := controllers.NewGraphQLController(deps.Products)
	if err != nil {
		return err
	}

	authenticated := middleware.Authenticate(deps.Issuer)
	adminOnly := rbac.AdminOnly(deps.AdminEmail)

	// Catalogue
	r.Get("/products", "products.index", productController.Index)
	r.Get("/products/{id}", "products.show", productController.Show)
	r.Post("/products", "products.store", productController.Store, authenticated, adminOnly)
	r.Put("/products/{id}", "products.update", productController.Update, authenticated, adminOnly)
	r.Delete("/products/{id}", "products.destroy", productController.Destroy, authenticated, adminOnly)

	// Accounts
	r.Post("/account", "account.register", accountController.Register)
	r.Post("/token", "account.token", accountController.Token)

	// Cart / wishlist
	r.Post("/cart", "cart.add", cartController.Add, authenticated)
	r.Get("/cart", "cart.index", cartController.Index, authenticated)
	r.Post("/wishlist", "wishlist.add", wishlistController.Add, authenticated)
	r.Get("/wishlist", "wishlist.index", wishlistController.Index, authenticated)

	// Read-only query surface + observability
	r.Post("/graphql", "graphql", graphqlController.Query)
	r.Get("/metrics", "metrics", metrics.Handler())

	return nil
}

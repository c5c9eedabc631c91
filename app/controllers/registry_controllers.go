package controllers

import (
	"net/http"

	"github.com/boutiklabs/boutik/app/models"
	"github.com/boutiklabs/boutik/app/repositories"
	"github.com/boutiklabs/boutik/pkg/bind"
	"github.com/boutiklabs/boutik/pkg/middleware"
	"github.com/boutiklabs/boutik/pkg/response"
)

// RegistryController serves a per-user product registry. The cart and the
// wishlist are two instances differing only in the confirmation message
// and the key under which the list is echoed back.
type RegistryController struct {
	registry *repositories.Registry
	listKey  string // "cart" | "wishlist"
	addedMsg string
}

func NewCartController(registry *repositories.Registry) *RegistryController {
	return &RegistryController{
		registry: registry,
		listKey:  "cart",
		addedMsg: "Produit ajouté au panier",
	}
}

func NewWishlistController(registry *repositories.Registry) *RegistryController {
	return &RegistryController{
		registry: registry,
		listKey:  "wishlist",
		addedMsg: "Produit ajouté à la liste d'envie",
	}
}

// Add handles POST /cart and POST /wishlist. The posted product is kept
// by value, duplicates and all.
func (c *RegistryController) Add(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromCtx(r.Context())
	if !ok {
		response.Message(w, http.StatusUnauthorized, "Accès interdit")
		return
	}

	var product models.Product
	if _, err := bind.JSON(r, &product); err != nil {
		response.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	items := c.registry.Add(email, product)
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": c.addedMsg,
		c.listKey: items,
	})
}

// Index handles GET /cart and GET /wishlist.
func (c *RegistryController) Index(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromCtx(r.Context())
	if !ok {
		response.Message(w, http.StatusUnauthorized, "Accès interdit")
		return
	}

	response.JSON(w, http.StatusOK, c.registry.List(email))
}

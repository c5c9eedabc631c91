package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boutiklabs/boutik/app/repositories"
	"github.com/boutiklabs/boutik/app/routes"
	"github.com/boutiklabs/boutik/app/services"
	"github.com/boutiklabs/boutik/pkg/auth"
	"github.com/boutiklabs/boutik/pkg/router"
	"github.com/boutiklabs/boutik/pkg/storage"
)

const adminEmail = "admin@admin.com"

func newAPI(t *testing.T) (http.Handler, *auth.Issuer) {
	t.Helper()

	issuer := auth.NewIssuer("test-secret", time.Hour)
	store := repositories.NewProductStore(storage.NewLocalDisk(t.TempDir()), "products.json")

	deps := routes.Deps{
		Products:   services.NewProductService(store),
		Accounts:   services.NewAccountDirectory(issuer),
		Issuer:     issuer,
		Cart:       repositories.NewRegistry(),
		Wishlist:   repositories.NewRegistry(),
		AdminEmail: adminEmail,
	}

	r := router.New()
	require.NoError(t, routes.RegisterAPI(r, deps))
	return r.Handler(), issuer
}

func do(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	decode(t, rec, &body)
	msg, _ := body["message"].(string)
	return msg
}

func adminToken(t *testing.T, issuer *auth.Issuer) string {
	t.Helper()
	token, err := issuer.Issue(adminEmail)
	require.NoError(t, err)
	return token
}

func laptop() map[string]interface{} {
	return map[string]interface{}{
		"code":              "P123",
		"name":              "Ordinateur",
		"description":       "PC portable",
		"image":             "lien.png",
		"category":          "Électronique",
		"price":             1500,
		"quantity":          5,
		"internalReference": "REF123",
		"shellId":           1,
		"inventoryStatus":   "INSTOCK",
		"rating":            4.5,
	}
}

// ─── Auth gate ────────────────────────────────────────────────────────────────

func TestProtectedRouteWithoutTokenIsUnauthorized(t *testing.T) {
	h, _ := newAPI(t)

	rec := do(t, h, http.MethodPost, "/products", "", laptop())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Accès interdit", message(t, rec))
}

func TestProtectedRouteWithMalformedTokenIsForbidden(t *testing.T) {
	h, _ := newAPI(t)

	rec := do(t, h, http.MethodPost, "/products", "garbage", laptop())

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Token invalide", message(t, rec))
}

func TestProtectedRouteWithExpiredTokenIsForbidden(t *testing.T) {
	h, _ := newAPI(t)

	expired := auth.NewIssuer("test-secret", -time.Minute)
	token, err := expired.Issue(adminEmail)
	require.NoError(t, err)

	rec := do(t, h, http.MethodPost, "/products", token, laptop())

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Token invalide", message(t, rec))
}

func TestAdminRouteWithNonAdminTokenIsForbidden(t *testing.T) {
	h, issuer := newAPI(t)

	token, err := issuer.Issue("user@x.com")
	require.NoError(t, err)

	rec := do(t, h, http.MethodPost, "/products", token, laptop())

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Accès réservé à l'administrateur", message(t, rec))
}

func TestAdminRouteWithAdminTokenSucceeds(t *testing.T) {
	h, issuer := newAPI(t)

	rec := do(t, h, http.MethodPost, "/products", adminToken(t, issuer), laptop())

	assert.Equal(t, http.StatusCreated, rec.Code)
}

// ─── Product CRUD over HTTP ───────────────────────────────────────────────────

func TestProductLifecycle(t *testing.T) {
	h, issuer := newAPI(t)
	token := adminToken(t, issuer)

	// Empty catalogue serializes as [].
	rec := do(t, h, http.MethodGet, "/products", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", string(bytes.TrimSpace(rec.Body.Bytes())))

	// Create.
	rec = do(t, h, http.MethodPost, "/products", token, laptop())
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]interface{}
	decode(t, rec, &created)
	id := int64(created["id"].(float64))
	require.NotZero(t, id)
	assert.Equal(t, created["createdAt"], created["updatedAt"])

	// Read back, list and by id.
	rec = do(t, h, http.MethodGet, "/products", "", nil)
	var list []map[string]interface{}
	decode(t, rec, &list)
	require.Len(t, list, 1)

	rec = do(t, h, http.MethodGet, "/products/"+itoa(id), "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Partial update preserves untouched fields.
	rec = do(t, h, http.MethodPut, "/products/"+itoa(id), token, map[string]interface{}{"price": 1400})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated map[string]interface{}
	decode(t, rec, &updated)
	assert.Equal(t, float64(1400), updated["price"])
	assert.Equal(t, "Ordinateur", updated["name"])
	assert.Equal(t, float64(5), updated["quantity"])
	assert.Equal(t, created["createdAt"], updated["createdAt"])

	// Delete is 204 with no body; the record is gone afterwards.
	rec = do(t, h, http.MethodDelete, "/products/"+itoa(id), token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())

	rec = do(t, h, http.MethodGet, "/products/"+itoa(id), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Produit non trouvé", message(t, rec))
}

func TestProductNotFoundPaths(t *testing.T) {
	h, issuer := newAPI(t)
	token := adminToken(t, issuer)

	rec := do(t, h, http.MethodGet, "/products/42", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPut, "/products/42", token, map[string]interface{}{"price": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, "/products/42", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─── Accounts and tokens ──────────────────────────────────────────────────────

func TestRegisterMissingFieldIsBadRequest(t *testing.T) {
	h, _ := newAPI(t)

	rec := do(t, h, http.MethodPost, "/account", "", map[string]string{
		"username": "u", "firstname": "f", "email": "e@x.com",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Tous les champs sont obligatoires", message(t, rec))
}

func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	h, _ := newAPI(t)
	body := map[string]string{"username": "u", "firstname": "f", "email": "e@x.com", "password": "p"}

	rec := do(t, h, http.MethodPost, "/account", "", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodPost, "/account", "", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestTokenFailures(t *testing.T) {
	h, _ := newAPI(t)

	rec := do(t, h, http.MethodPost, "/token", "", map[string]string{"email": "ghost@x.com", "password": "p"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Utilisateur non trouvé", message(t, rec))

	body := map[string]string{"username": "u", "firstname": "f", "email": "e@x.com", "password": "p"}
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/account", "", body).Code)

	rec = do(t, h, http.MethodPost, "/token", "", map[string]string{"email": "e@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Mot de passe incorrect", message(t, rec))
}

// TestAccountCartScenario walks the full journey: register, obtain a
// token, read the empty cart, add a product, read it back.
func TestAccountCartScenario(t *testing.T) {
	h, _ := newAPI(t)

	rec := do(t, h, http.MethodPost, "/account", "", map[string]string{
		"username": "u", "firstname": "f", "email": "e@x.com", "password": "p",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Compte créé avec succès", message(t, rec))

	rec = do(t, h, http.MethodPost, "/token", "", map[string]string{"email": "e@x.com", "password": "p"})
	require.Equal(t, http.StatusOK, rec.Code)

	var tokenBody map[string]string
	decode(t, rec, &tokenBody)
	token := tokenBody["token"]
	require.NotEmpty(t, token)

	rec = do(t, h, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", string(bytes.TrimSpace(rec.Body.Bytes())))

	rec = do(t, h, http.MethodPost, "/cart", token, map[string]interface{}{"id": 1, "name": "Ordinateur"})
	require.Equal(t, http.StatusOK, rec.Code)

	var added struct {
		Message string                   `json:"message"`
		Cart    []map[string]interface{} `json:"cart"`
	}
	decode(t, rec, &added)
	assert.Equal(t, "Produit ajouté au panier", added.Message)
	require.Len(t, added.Cart, 1)

	rec = do(t, h, http.MethodGet, "/cart", token, nil)
	var cart []map[string]interface{}
	decode(t, rec, &cart)
	require.Len(t, cart, 1)
	assert.Equal(t, "Ordinateur", cart[0]["name"])
}

func TestWishlistIsSeparateFromCart(t *testing.T) {
	h, issuer := newAPI(t)
	token, err := issuer.Issue("e@x.com")
	require.NoError(t, err)

	rec := do(t, h, http.MethodPost, "/wishlist", token, map[string]interface{}{"id": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Produit ajouté à la liste d'envie", message(t, rec))

	rec = do(t, h, http.MethodGet, "/cart", token, nil)
	assert.Equal(t, "[]", string(bytes.TrimSpace(rec.Body.Bytes())))

	rec = do(t, h, http.MethodGet, "/wishlist", token, nil)
	var wishlist []map[string]interface{}
	decode(t, rec, &wishlist)
	assert.Len(t, wishlist, 1)
}

func TestCartRequiresToken(t *testing.T) {
	h, _ := newAPI(t)

	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodGet, "/cart", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodPost, "/wishlist", "", laptop()).Code)
}

// ─── GraphQL read surface ─────────────────────────────────────────────────────

func TestGraphQLProductsQuery(t *testing.T) {
	h, issuer := newAPI(t)
	require.Equal(t, http.StatusCreated,
		do(t, h, http.MethodPost, "/products", adminToken(t, issuer), laptop()).Code)

	rec := do(t, h, http.MethodPost, "/graphql", "", map[string]string{
		"query": "{ products { name price } }",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Data struct {
			Products []map[string]interface{} `json:"products"`
		} `json:"data"`
	}
	decode(t, rec, &result)
	require.Len(t, result.Data.Products, 1)
	assert.Equal(t, "Ordinateur", result.Data.Products[0]["name"])
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

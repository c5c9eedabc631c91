package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boutiklabs/boutik/pkg/router"
)

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNamedRouteURL(t *testing.T) {
	r := router.New()
	r.Get("/products/{id}", "products.show", ok)

	url, err := r.URL("products.show", map[string]string{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "/products/42", url)
}

func TestURLMissingParamFails(t *testing.T) {
	r := router.New()
	r.Get("/products/{id}", "products.show", ok)

	_, err := r.URL("products.show", nil)
	assert.Error(t, err)

	_, err = r.URL("no.such.route", nil)
	assert.Error(t, err)
}

func TestGroupPrefixesPaths(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	api.Get("/products", "products.index", ok)

	path, found := r.Path("products.index")
	require.True(t, found)
	assert.Equal(t, "/api/products", path)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNestedGroupJoinsPrefixes(t *testing.T) {
	r := router.New()
	v1 := r.Group("/api").Group("/v1")
	v1.Post("/products", "products.store", ok)

	path, found := r.Path("products.store")
	require.True(t, found)
	assert.Equal(t, "/api/v1/products", path)
}

func TestGroupMiddlewareOrder(t *testing.T) {
	var order []string
	tag := func(label string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, label)
				next.ServeHTTP(w, req)
			})
		}
	}

	r := router.New()
	g := r.Group("/admin", tag("group"))
	g.Get("/dashboard", "", ok, tag("route"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"group", "route"}, order)
}

func TestRoutesListing(t *testing.T) {
	r := router.New()
	r.Get("/products", "products.index", ok)
	r.Delete("/products/{id}", "products.destroy", ok)

	infos := r.Routes()
	require.Len(t, infos, 2)
	assert.Equal(t, http.MethodGet, infos[0].Method)
	assert.Equal(t, "/products", infos[0].Path)
	assert.Equal(t, "products.destroy", infos[1].Name)
}

package repositories

import (
	"sync"

	"github.com/boutiklabs/boutik/app/models"
)

// Registry is a per-identity append-only product collection, keyed by the
// authenticated email. Carts and wishlists are two instances of it.
//
// Entries are held by value: adding the same product twice keeps both
// copies, with no dedup or quantity aggregation. Contents live for the
// process lifetime only and are lost on restart.
//
// The map itself is guarded by a mutex — Go maps fault on concurrent
// write, so the registry cannot be left bare the way the historic
// implementation was. The preserved lost-update hazard lives at the
// product file, not here.
type Registry struct {
	mu    sync.RWMutex
	lists map[string][]models.Product
}

func NewRegistry() *Registry {
	return &Registry{lists: make(map[string][]models.Product)}
}

// Add appends a product to the identity's list and returns a snapshot of
// the list after the append.
func (r *Registry) Add(email string, p models.Product) []models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lists[email] = append(r.lists[email], p)
	return snapshot(r.lists[email])
}

// List returns a snapshot of the identity's list. An identity with no
// entries gets an empty, non-nil slice so it serializes as [].
func (r *Registry) List(email string) []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return snapshot(r.lists[email])
}

func snapshot(items []models.Product) []models.Product {
	out := make([]models.Product, len(items))
	copy(out, items)
	return out
}

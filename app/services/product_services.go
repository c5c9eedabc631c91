// Package services holds the business rules between the HTTP layer and
// the repositories.
package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/boutiklabs/boutik/app/models"
	"github.com/boutiklabs/boutik/app/repositories"
	"github.com/boutiklabs/boutik/pkg/collection"
)

// Service-level error taxonomy, mapped to status codes at the controllers.
var (
	ErrNotFound           = errors.New("not found")
	ErrMissingFields      = errors.New("missing required fields")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ProductService implements catalogue CRUD over the flat-file store.
// Every mutation is a full load→mutate→save cycle; identity and
// timestamps are assigned here, never by the client.
type ProductService struct {
	store *repositories.ProductStore
}

func NewProductService(store *repositories.ProductStore) *ProductService {
	return &ProductService{store: store}
}

// ParseID coerces a route parameter to the canonical numeric id type.
// The historic API matched ids loosely ("5" equals 5); normalizing both
// sides to int64 keeps that contract explicit.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrNotFound
	}
	return id, nil
}

// List returns the stored collection verbatim.
func (s *ProductService) List() []models.Product {
	return s.store.Load()
}

// Get returns the product with the given id, or ErrNotFound.
func (s *ProductService) Get(id int64) (models.Product, error) {
	p, ok := collection.First(s.store.Load(), func(p models.Product) bool { return p.ID == id })
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

// Create assigns identity and timestamps, appends and persists.
//
// The id is the creation instant in Unix milliseconds, so two creates in
// the same millisecond collide. Known limitation of the file format;
// callers at that rate need a different backend anyway.
func (s *ProductService) Create(fields models.ProductPatch) (models.Product, error) {
	now := time.Now().UnixMilli()

	p := models.Product{
		ID:        now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	fields.Apply(&p)

	products := append(s.store.Load(), p)
	if err := s.store.Save(products); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Update shallow-merges the patch onto the stored record, refreshes
// updatedAt and persists. Fields absent from the patch are preserved;
// id and createdAt are not updatable.
func (s *ProductService) Update(id int64, patch models.ProductPatch) (models.Product, error) {
	products := s.store.Load()

	for i := range products {
		if products[i].ID != id {
			continue
		}

		patch.Apply(&products[i])
		products[i].UpdatedAt = time.Now().UnixMilli()

		if err := s.store.Save(products); err != nil {
			return models.Product{}, err
		}
		return products[i], nil
	}

	return models.Product{}, ErrNotFound
}

// Delete removes the matching record and persists.
func (s *ProductService) Delete(id int64) error {
	products := s.store.Load()

	kept := collection.Reject(products, func(p models.Product) bool { return p.ID == id })
	if len(kept) == len(products) {
		return ErrNotFound
	}

	return s.store.Save(kept)
}

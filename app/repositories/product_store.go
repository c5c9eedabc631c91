// Package repositories holds the data-access layer: the durable product
// store and the in-memory per-user registries.
package repositories

import (
	"encoding/json"

	"github.com/boutiklabs/boutik/app/models"
	"github.com/boutiklabs/boutik/pkg/logger"
	"github.com/boutiklabs/boutik/pkg/metrics"
	"github.com/boutiklabs/boutik/pkg/storage"
)

// ProductStore persists the full product collection as one pretty-printed
// JSON blob on a storage disk. Every operation reads or writes the whole
// collection; there is no partial access and no locking around the
// load/mutate/save cycle (two overlapping writers can lose an update).
type ProductStore struct {
	disk storage.Disk
	path string
}

func NewProductStore(disk storage.Disk, path string) *ProductStore {
	return &ProductStore{disk: disk, path: path}
}

// Load reads the backing blob and decodes the collection.
//
// Missing, unreadable or malformed content degrades to an empty slice
// instead of failing. This keeps a fresh deployment working with no seed
// file, but it also masks real corruption — the warn log is the only
// signal, so watch boutik_store_loads_total{outcome="degraded"}.
func (s *ProductStore) Load() []models.Product {
	data, err := s.disk.Get(s.path)
	if err != nil {
		metrics.StoreLoads.WithLabelValues("degraded").Inc()
		if s.disk.Exists(s.path) {
			logger.Warn("product store: unreadable data file", "path", s.path, "error", err)
		}
		return []models.Product{}
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		metrics.StoreLoads.WithLabelValues("degraded").Inc()
		logger.Warn("product store: malformed data file", "path", s.path, "error", err)
		return []models.Product{}
	}

	metrics.StoreLoads.WithLabelValues("ok").Inc()
	if products == nil {
		return []models.Product{}
	}
	return products
}

// Save serializes the full collection and overwrites the backing blob.
func (s *ProductStore) Save(products []models.Product) error {
	if products == nil {
		products = []models.Product{} // keep the file a JSON array, never "null"
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		metrics.StoreSaves.WithLabelValues("error").Inc()
		return err
	}

	if err := s.disk.Put(s.path, data); err != nil {
		metrics.StoreSaves.WithLabelValues("error").Inc()
		return err
	}

	metrics.StoreSaves.WithLabelValues("ok").Inc()
	return nil
}

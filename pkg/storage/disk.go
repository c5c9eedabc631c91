// Package storage abstracts where the flat product file lives.
//
// Two drivers are available:
//   - "local" — local filesystem (default)
//   - "s3"    — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Either way the catalogue remains a single blob; the driver only decides
// which medium holds it.
//
//	storage.Connect()
//	data, _ := storage.Get("products.json")
//	storage.Put("products.json", data)
package storage

import "time"

// Disk is the blob driver interface.
type Disk interface {
	// Put writes content to path, replacing any previous content.
	Put(path string, content []byte) error

	// Get returns the full content of the blob at path.
	Get(path string) ([]byte, error)

	// Exists reports whether a blob exists at path.
	Exists(path string) bool

	// Missing is the inverse of Exists.
	Missing(path string) bool

	// Size returns the byte size of the blob.
	Size(path string) (int64, error)

	// LastModified returns the blob's last-modified time.
	LastModified(path string) (time.Time, error)

	// URL returns the public URL for path (meaningful for S3-style disks).
	URL(path string) string

	// Delete removes a blob. Returns nil if it did not exist.
	Delete(path string) error
}

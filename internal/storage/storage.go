package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/dulpromax/dulpromax-b2b/internal/domain"
)

// Package storage keeps local catalog snapshots exported from the API.

// Store persists the last exported catalog. Saving a resource replaces
// everything previously stored for it.
type Store interface {
	Close() error
	SaveCategories(cats []domain.Category) error
	SaveProducts(products []domain.Product) error
	Categories() ([]domain.Category, error)
	Products() ([]domain.Product, error)
	// SavedAt reports when the snapshot was last written; zero if never.
	SavedAt() (time.Time, error)
}

// Options controls the concrete store implementations.
type Options struct {
	// OpenTimeout bounds waiting for the file lock held by another process.
	OpenTimeout time.Duration
}

const defaultOpenTimeout = time.Second

// NewStore creates the configured storage backend.
func NewStore(typ, path string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		return openBolt(path, opts)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.OpenTimeout <= 0 {
		opts.OpenTimeout = defaultOpenTimeout
	}
	return opts
}

type noopStore struct{}

func (noopStore) Close() error                           { return nil }
func (noopStore) SaveCategories([]domain.Category) error { return nil }
func (noopStore) SaveProducts([]domain.Product) error    { return nil }
func (noopStore) Categories() ([]domain.Category, error) { return nil, nil }
func (noopStore) Products() ([]domain.Product, error)    { return nil, nil }
func (noopStore) SavedAt() (time.Time, error)            { return time.Time{}, nil }

package exporter

import (
	"context"

	"github.com/dulpromax/dulpromax-b2b/internal/domain"
	"github.com/dulpromax/dulpromax-b2b/pkg/apiclient"
)

// CatalogReader is the read side of the catalog API the exporter walks.
type CatalogReader interface {
	ListCategories(ctx context.Context, activeOnly *bool) ([]domain.Category, error)
	ListProducts(ctx context.Context, filter apiclient.ProductFilter) (*domain.ProductList, error)
}

package exporter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dulpromax/dulpromax-b2b/internal/domain"
	"github.com/dulpromax/dulpromax-b2b/internal/logger"
	"github.com/dulpromax/dulpromax-b2b/internal/storage"
	"github.com/dulpromax/dulpromax-b2b/pkg/apiclient"
)

const (
	defaultPageSize = 100
	defaultMaxPages = 1000
)

// Service copies the remote catalog into a snapshot store.
type Service struct {
	reader   CatalogReader
	store    storage.Store
	log      logger.Logger
	pageSize int
	maxPages int
	now      func() time.Time
}

// NewService wires an exporter over the API reader and the destination store.
func NewService(reader CatalogReader, store storage.Store, log logger.Logger) *Service {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Service{
		reader:   reader,
		store:    store,
		log:      log,
		pageSize: defaultPageSize,
		maxPages: defaultMaxPages,
		now:      time.Now,
	}
}

// resource is one independently exported slice of the catalog.
type resource struct {
	name string
	run  func(ctx context.Context, snap *domain.CatalogSnapshot) (int, error)
}

// Run exports every resource. A failing resource does not stop the others;
// their errors are joined and the snapshot holds whatever was exported.
func (s *Service) Run(ctx context.Context) (*domain.CatalogSnapshot, error) {
	if s == nil || s.reader == nil || s.store == nil {
		return nil, fmt.Errorf("exporter service is not initialized")
	}

	snap := &domain.CatalogSnapshot{TakenAt: s.now().UTC()}
	resources := []resource{
		{name: "categories", run: s.exportCategories},
		{name: "products", run: s.exportProducts},
	}

	errs := make([]error, 0, len(resources))
	for _, r := range resources {
		count, err := r.run(ctx, snap)
		if err != nil {
			errs = append(errs, fmt.Errorf("export %s: %w", r.name, err))
			s.log.ErrorObj("resource export failed", "export_error", map[string]any{
				"resource": r.name,
				"error":    err.Error(),
			})
			continue
		}
		s.log.InfoObj("resource export completed", "export_result", map[string]any{
			"resource": r.name,
			"count":    count,
		})
	}

	return snap, errors.Join(errs...)
}

func (s *Service) exportCategories(ctx context.Context, snap *domain.CatalogSnapshot) (int, error) {
	cats, err := s.reader.ListCategories(ctx, nil)
	if err != nil {
		return 0, err
	}
	if err := s.store.SaveCategories(cats); err != nil {
		return 0, fmt.Errorf("save: %w", err)
	}
	snap.Categories = cats
	return len(cats), nil
}

// exportProducts walks the listing page by page until the server reports
// the last page or returns an empty one.
func (s *Service) exportProducts(ctx context.Context, snap *domain.CatalogSnapshot) (int, error) {
	var products []domain.Product
	for page := 1; page <= s.maxPages; page++ {
		list, err := s.reader.ListProducts(ctx, apiclient.ProductFilter{Page: page, PerPage: s.pageSize})
		if err != nil {
			return 0, err
		}
		products = append(products, list.Products...)
		s.log.DebugObj("product page fetched", "export_page", map[string]any{
			"page":        page,
			"total_pages": list.TotalPages,
			"count":       len(list.Products),
		})
		if len(list.Products) == 0 || page >= list.TotalPages {
			break
		}
	}

	if err := s.store.SaveProducts(products); err != nil {
		return 0, fmt.Errorf("save: %w", err)
	}
	snap.Products = products
	return len(products), nil
}

package memory

import (
	"context"
	"strconv"

	apperrors "github.com/nataliastore/StorefrontGo/pkg/errors"

	"github.com/nataliastore/StorefrontGo/internal/domain"
	"github.com/nataliastore/StorefrontGo/internal/repository"
)

// CatalogRepository serves the embedded catalog. The catalog is immutable
// after construction, so reads need no locking.
type CatalogRepository struct {
	products []domain.Product
	byID     map[int64]int
	bySlug   map[string]int
}

// NewCatalogRepository creates a catalog repository over the given products,
// preserving their order.
func NewCatalogRepository(products []domain.Product) *CatalogRepository {
	r := &CatalogRepository{
		products: products,
		byID:     make(map[int64]int, len(products)),
		bySlug:   make(map[string]int, len(products)),
	}
	for i, p := range products {
		r.byID[p.ID] = i
		r.bySlug[p.Slug] = i
	}
	return r
}

// NewSeededCatalogRepository creates a catalog repository over the embedded
// seed catalog.
func NewSeededCatalogRepository() *CatalogRepository {
	return NewCatalogRepository(SeedProducts())
}

// GetByID returns the product with the given ID.
func (r *CatalogRepository) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("product", strconv.FormatInt(id, 10))
	}
	p := r.products[i]
	return &p, nil
}

// GetBySlug returns the product with the given slug.
func (r *CatalogRepository) GetBySlug(_ context.Context, slug string) (*domain.Product, error) {
	i, ok := r.bySlug[slug]
	if !ok {
		return nil, apperrors.NotFound("product", slug)
	}
	p := r.products[i]
	return &p, nil
}

// List returns products matching the filter in catalog order plus the total
// match count before pagination.
func (r *CatalogRepository) List(_ context.Context, filter repository.ProductFilter) ([]domain.Product, int, error) {
	matched := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Category != nil && p.Category != *filter.Category {
			continue
		}
		matched = append(matched, p)
	}

	total := len(matched)

	if filter.Offset >= total {
		return []domain.Product{}, total, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

var _ repository.CatalogRepository = (*CatalogRepository)(nil)

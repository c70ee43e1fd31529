package service

import (
	"context"
	"fmt"
	"strconv"

	apperrors "github.com/nataliastore/StorefrontGo/pkg/errors"

	"github.com/nataliastore/StorefrontGo/internal/domain"
	"github.com/nataliastore/StorefrontGo/internal/repository"
)

// ProductCard is the listing projection of a product: the raw fields plus the
// derived display strings the storefront renders.
type ProductCard struct {
	domain.Product
	PriceDisplay string `json:"price_display"`
	BadgeLabel   string `json:"badge_label,omitempty"`
	ActionLabel  string `json:"action_label"`
}

// NewProductCard projects a product into its card form.
func NewProductCard(p domain.Product) ProductCard {
	return ProductCard{
		Product:      p,
		PriceDisplay: p.PriceDisplay(),
		BadgeLabel:   p.BadgeLabel(),
		ActionLabel:  p.CardActionLabel(),
	}
}

// CatalogService implements read operations over the product catalog.
type CatalogService struct {
	repo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// List returns product cards matching the category filter in catalog order.
// An empty category or the "all" sentinel returns the whole catalog; any
// other unknown category is rejected.
func (s *CatalogService) List(ctx context.Context, category string, offset, limit int) ([]ProductCard, int, error) {
	filter := repository.ProductFilter{Offset: offset, Limit: limit}

	switch category {
	case "", domain.CategoryAll:
		// no category condition
	default:
		if !domain.IsValidCategory(category) {
			return nil, 0, apperrors.InvalidInput(fmt.Sprintf("unknown category %q", category))
		}
		filter.Category = &category
	}

	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	cards := make([]ProductCard, len(products))
	for i, p := range products {
		cards[i] = NewProductCard(p)
	}
	return cards, total, nil
}

// Get returns a single product looked up by numeric ID or by slug.
func (s *CatalogService) Get(ctx context.Context, idOrSlug string) (*ProductCard, error) {
	if idOrSlug == "" {
		return nil, apperrors.InvalidInput("product id or slug is required")
	}

	var (
		p   *domain.Product
		err error
	)
	if id, convErr := strconv.ParseInt(idOrSlug, 10, 64); convErr == nil {
		p, err = s.repo.GetByID(ctx, id)
	} else {
		p, err = s.repo.GetBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return nil, err
	}

	card := NewProductCard(*p)
	return &card, nil
}

// Categories returns the closed category enumeration for filter UIs, with
// the "all" sentinel first.
func (s *CatalogService) Categories(_ context.Context) []string {
	return append([]string{domain.CategoryAll}, domain.ValidCategories()...)
}

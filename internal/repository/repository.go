package repository

import (
	"context"

	"github.com/nataliastore/StorefrontGo/internal/domain"
)

// ProductFilter narrows a catalog listing. A nil Category matches everything.
type ProductFilter struct {
	Category *string
	Offset   int
	Limit    int
}

// CatalogRepository provides read access to the product catalog.
type CatalogRepository interface {
	// GetByID returns the product with the given ID, or a not-found error.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	// GetBySlug returns the product with the given slug, or a not-found error.
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	// List returns products matching the filter in catalog order, plus the
	// total count before pagination.
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, int, error)
}

// CartRepository persists carts keyed by session ID.
type CartRepository interface {
	// Get returns the cart for the session, or a not-found error when no cart
	// has been saved.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	// Save persists the cart, replacing any previous document.
	Save(ctx context.Context, cart *domain.Cart) error
	// Delete removes the session's cart. Deleting an absent cart is not an error.
	Delete(ctx context.Context, sessionID string) error
}

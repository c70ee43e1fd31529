package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	apperrors "github.com/nataliastore/StorefrontGo/pkg/errors"
	"github.com/nataliastore/StorefrontGo/pkg/validator"

	"github.com/nataliastore/StorefrontGo/internal/domain"
	"github.com/nataliastore/StorefrontGo/internal/repository"
)

// Skip reasons for operations whose preconditions were not met. A skip is not
// an error: the state is untouched and the caller is told why.
const (
	SkipReasonSoldOut        = "sold_out"
	SkipReasonUnknownProduct = "unknown_product"
	SkipReasonNoOpenView     = "no_open_view"
)

// EventPublisher publishes cart domain events. Satisfied by event.Producer.
type EventPublisher interface {
	PublishCartUpdated(ctx context.Context, cart *domain.Cart) error
	PublishCartCleared(ctx context.Context, sessionID string) error
}

// AddItemInput holds the parameters for adding a line to the cart.
type AddItemInput struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	Size      string `json:"size" validate:"required,oneof=XS S M L XL"`
	Quantity  int    `json:"quantity" validate:"required,gte=1,lte=100"`
}

// CartResult is the outcome of a cart mutation. When Skipped is true the cart
// is unchanged and SkipReason says why.
type CartResult struct {
	Cart       *domain.Cart `json:"cart"`
	Skipped    bool         `json:"skipped"`
	SkipReason string       `json:"skip_reason,omitempty"`
}

// CartView is a cart plus its recomputed totals, ready to render.
type CartView struct {
	Cart            *domain.Cart `json:"cart"`
	ItemCount       int          `json:"item_count"`
	Subtotal        int64        `json:"subtotal"`
	SubtotalDisplay string       `json:"subtotal_display"`
	Empty           bool         `json:"empty"`
}

// NewCartView computes the render projection of a cart.
func NewCartView(cart *domain.Cart) *CartView {
	return &CartView{
		Cart:            cart,
		ItemCount:       cart.ItemCount(),
		Subtotal:        cart.Subtotal(),
		SubtotalDisplay: domain.FormatPrice(cart.Subtotal()),
		Empty:           cart.IsEmpty(),
	}
}

// CartService implements the business logic for cart operations.
type CartService struct {
	carts    repository.CartRepository
	catalog  repository.CatalogRepository
	producer EventPublisher
	logger   *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(carts repository.CartRepository, catalog repository.CatalogRepository, producer EventPublisher, logger *slog.Logger) *CartService {
	return &CartService{
		carts:    carts,
		catalog:  catalog,
		producer: producer,
		logger:   logger,
	}
}

// GetCart retrieves the cart view for a session. A session that has never
// saved a cart gets an empty one.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	cart, err := s.getOrCreateCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return NewCartView(cart), nil
}

// AddItem adds a product line to the session's cart. The line is denormalized
// from the catalog at add time. An existing (product, size) line merges by
// quantity, capped at domain.MaxQuantityPerItem. Sold-out and unknown
// products skip with the cart untouched.
func (s *CartService) AddItem(ctx context.Context, sessionID string, input AddItemInput) (*CartResult, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if err := validator.Validate(input); err != nil {
		return nil, err
	}

	product, err := s.catalog.GetByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &CartResult{Skipped: true, SkipReason: SkipReasonUnknownProduct}, nil
		}
		return nil, fmt.Errorf("resolve product: %w", err)
	}
	if product.SoldOut {
		return &CartResult{Skipped: true, SkipReason: SkipReasonSoldOut}, nil
	}

	cart, err := s.getOrCreateCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if i := cart.FindItemIndex(input.ProductID, input.Size); i >= 0 {
		newQty := cart.Items[i].Quantity + input.Quantity
		if newQty > domain.MaxQuantityPerItem {
			newQty = domain.MaxQuantityPerItem
		}
		cart.Items[i].Quantity = newQty
	} else {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Size:      input.Size,
			Quantity:  input.Quantity,
		})
	}

	if err := s.saveAndPublish(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("session_id", sessionID),
		slog.Int64("product_id", input.ProductID),
		slog.String("size", input.Size),
		slog.Int("quantity", input.Quantity),
	)

	return &CartResult{Cart: cart}, nil
}

// UpdateQuantity applies a quantity delta to the line addressed by product ID
// and size. The resulting quantity is clamped to a floor of 1; removal is a
// separate operation, never a side effect of decrementing.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID int64, size string, delta int) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if productID <= 0 {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if !domain.IsValidSize(size) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown size %q", size))
	}

	cart, err := s.getCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	i := cart.FindItemIndex(productID, size)
	if i < 0 {
		return nil, apperrors.NotFound("cart item", lineRef(productID, size))
	}

	newQty := cart.Items[i].Quantity + delta
	if newQty < 1 {
		newQty = 1
	}
	if newQty > domain.MaxQuantityPerItem {
		newQty = domain.MaxQuantityPerItem
	}
	cart.Items[i].Quantity = newQty

	if err := s.saveAndPublish(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "cart item quantity updated",
		slog.String("session_id", sessionID),
		slog.Int64("product_id", productID),
		slog.String("size", size),
		slog.Int("quantity", newQty),
	)

	return cart, nil
}

// RemoveItem removes the line addressed by product ID and size.
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID int64, size string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if productID <= 0 {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if !domain.IsValidSize(size) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown size %q", size))
	}

	cart, err := s.getCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	i := cart.FindItemIndex(productID, size)
	if i < 0 {
		return nil, apperrors.NotFound("cart item", lineRef(productID, size))
	}
	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)

	if err := s.saveAndPublish(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("session_id", sessionID),
		slog.Int64("product_id", productID),
		slog.String("size", size),
	)

	return cart, nil
}

// ClearCart drops the session's persisted cart.
func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperrors.InvalidInput("session id is required")
	}

	if err := s.carts.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}

	if err := s.producer.PublishCartCleared(ctx, sessionID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cart cleared",
		slog.String("session_id", sessionID),
	)

	return nil
}

// getCart retrieves an existing cart; a session without one gets a not-found
// error. Used by line mutations, which need a line to address.
func (s *CartService) getCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("cart", sessionID)
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

// getOrCreateCart retrieves the session's cart, creating an empty one if none
// was saved yet.
func (s *CartService) getOrCreateCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.NewCart(sessionID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) saveAndPublish(ctx context.Context, cart *domain.Cart) error {
	cart.UpdatedAt = time.Now().UTC()

	if err := s.carts.Save(ctx, cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}

	if err := s.producer.PublishCartUpdated(ctx, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("session_id", cart.SessionID),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

func lineRef(productID int64, size string) string {
	return fmt.Sprintf("%d/%s", productID, size)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	apperrors "github.com/nataliastore/StorefrontGo/pkg/errors"

	"github.com/nataliastore/StorefrontGo/internal/domain"
	"github.com/nataliastore/StorefrontGo/internal/repository"
)

// QuickViewProjection is the rendered state of an open quick view.
type QuickViewProjection struct {
	Product       domain.Product `json:"product"`
	PriceDisplay  string         `json:"price_display"`
	BadgeLabel    string         `json:"badge_label,omitempty"`
	Quantity      int            `json:"quantity"`
	Sizes         []string       `json:"sizes"`
	ActionLabel   string         `json:"action_label"`
	ActionEnabled bool           `json:"action_enabled"`
}

// QuickViewResult is the outcome of a quick-view operation. When Skipped is
// true nothing changed and SkipReason says why.
type QuickViewResult struct {
	View       *QuickViewProjection `json:"view,omitempty"`
	Skipped    bool                 `json:"skipped"`
	SkipReason string               `json:"skip_reason,omitempty"`
}

// QuickViewService owns the transient quick-view state per session. State
// lives in memory only; it is a view concern, not a stored document.
type QuickViewService struct {
	catalog repository.CatalogRepository
	logger  *slog.Logger

	mu    sync.RWMutex
	views map[string]*domain.QuickView
}

// NewQuickViewService creates a new quick-view service.
func NewQuickViewService(catalog repository.CatalogRepository, logger *slog.Logger) *QuickViewService {
	return &QuickViewService{
		catalog: catalog,
		logger:  logger,
		views:   make(map[string]*domain.QuickView),
	}
}

// Open opens a quick view on the given product, replacing any view the
// session had open and resetting the pending quantity to 1. An unknown
// product skips.
func (s *QuickViewService) Open(ctx context.Context, sessionID string, productID int64) (*QuickViewResult, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if productID <= 0 {
		return nil, apperrors.InvalidInput("product id is required")
	}

	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &QuickViewResult{Skipped: true, SkipReason: SkipReasonUnknownProduct}, nil
		}
		return nil, fmt.Errorf("resolve product: %w", err)
	}

	view := domain.NewQuickView(sessionID, *product)

	s.mu.Lock()
	s.views[sessionID] = view
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "quick view opened",
		slog.String("session_id", sessionID),
		slog.Int64("product_id", productID),
	)

	return &QuickViewResult{View: project(view)}, nil
}

// AdjustQuantity applies a delta to the open view's pending quantity,
// clamping at a floor of 1. A session with no open view skips.
func (s *QuickViewService) AdjustQuantity(ctx context.Context, sessionID string, delta int) (*QuickViewResult, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	view, ok := s.views[sessionID]
	if !ok {
		return &QuickViewResult{Skipped: true, SkipReason: SkipReasonNoOpenView}, nil
	}

	view.AdjustQuantity(delta)

	s.logger.DebugContext(ctx, "quick view quantity adjusted",
		slog.String("session_id", sessionID),
		slog.Int("delta", delta),
		slog.Int("quantity", view.Quantity),
	)

	return &QuickViewResult{View: project(view)}, nil
}

// Get returns the session's open view, or a skipped result when none is open.
func (s *QuickViewService) Get(_ context.Context, sessionID string) (*QuickViewResult, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	s.mu.RLock()
	view, ok := s.views[sessionID]
	s.mu.RUnlock()

	if !ok {
		return &QuickViewResult{Skipped: true, SkipReason: SkipReasonNoOpenView}, nil
	}
	return &QuickViewResult{View: project(view)}, nil
}

// Close clears the session's open view. Closing when nothing is open is fine.
func (s *QuickViewService) Close(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperrors.InvalidInput("session id is required")
	}

	s.mu.Lock()
	delete(s.views, sessionID)
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "quick view closed",
		slog.String("session_id", sessionID),
	)

	return nil
}

func project(view *domain.QuickView) *QuickViewProjection {
	return &QuickViewProjection{
		Product:       view.Product,
		PriceDisplay:  view.Product.PriceDisplay(),
		BadgeLabel:    view.Product.BadgeLabel(),
		Quantity:      view.Quantity,
		Sizes:         domain.ValidSizes(),
		ActionLabel:   view.Product.ActionLabel(),
		ActionEnabled: view.ActionEnabled(),
	}
}

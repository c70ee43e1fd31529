package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	apperrors "github.com/nataliastore/StorefrontGo/pkg/errors"
	"github.com/nataliastore/StorefrontGo/pkg/httputil"
	"github.com/nataliastore/StorefrontGo/pkg/validator"

	"github.com/nataliastore/StorefrontGo/internal/service"
)

// QuickViewHandler handles HTTP requests for quick-view endpoints.
type QuickViewHandler struct {
	service *service.QuickViewService
	logger  *slog.Logger
}

// NewQuickViewHandler creates a new quick-view HTTP handler.
func NewQuickViewHandler(svc *service.QuickViewService, logger *slog.Logger) *QuickViewHandler {
	return &QuickViewHandler{
		service: svc,
		logger:  logger,
	}
}

// OpenRequest is the JSON request body for opening a quick view.
type OpenRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

// AdjustQuantityRequest is the JSON request body for a quantity delta.
type AdjustQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// Open handles POST /api/v1/quickview
func (h *QuickViewHandler) Open(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())

	var req OpenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid request body: "+err.Error()), h.logger)
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	result, err := h.service.Open(r.Context(), sessionID, req.ProductID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}

// Get handles GET /api/v1/quickview
func (h *QuickViewHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())

	result, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}

// AdjustQuantity handles PATCH /api/v1/quickview/qty
func (h *QuickViewHandler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())

	var req AdjustQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid request body: "+err.Error()), h.logger)
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	result, err := h.service.AdjustQuantity(r.Context(), sessionID, req.Delta)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}

// Close handles DELETE /api/v1/quickview
func (h *QuickViewHandler) Close(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())

	if err := h.service.Close(r.Context(), sessionID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"status": "closed"}})
}

package domain

import "time"

// QuickView is the state of an open quick-view panel for one session. At most
// one panel is open per session; opening another product replaces it.
type QuickView struct {
	SessionID string    `json:"session_id"`
	Product   Product   `json:"product"`
	Quantity  int       `json:"quantity"`
	OpenedAt  time.Time `json:"opened_at"`
}

// NewQuickView opens a quick view on the given product with quantity 1.
func NewQuickView(sessionID string, product Product) *QuickView {
	return &QuickView{
		SessionID: sessionID,
		Product:   product,
		Quantity:  1,
		OpenedAt:  time.Now().UTC(),
	}
}

// AdjustQuantity applies a delta to the selected quantity, clamping at a
// floor of 1. There is no upper clamp here; the cart applies its own cap on
// add.
func (q *QuickView) AdjustQuantity(delta int) {
	q.Quantity += delta
	if q.Quantity < 1 {
		q.Quantity = 1
	}
}

// ActionEnabled reports whether the add-to-bag action is available.
func (q *QuickView) ActionEnabled() bool {
	return !q.Product.SoldOut
}

package domain

import "fmt"

// Product categories. The catalog is small and the set is closed.
const (
	CategoryBikini      = "bikini"
	CategoryLingerie    = "lingerie"
	CategoryBodysuit    = "bodysuit"
	CategorySpecial     = "special"
	CategoryAccessories = "accessories"
)

// CategoryAll is the filter sentinel that matches every product. It is never
// stored on a product.
const CategoryAll = "all"

// Badge values a product may carry.
const (
	BadgeSoldOut    = "sold-out"
	BadgeNew        = "new"
	BadgeBestseller = "bestseller"
	BadgeLimited    = "limited"
)

// Sizes offered for every product.
const (
	SizeXS = "XS"
	SizeS  = "S"
	SizeM  = "M"
	SizeL  = "L"
	SizeXL = "XL"
)

// Product represents a catalog item. Price is in cents. SoldOut is its own
// field rather than derived from the badge so availability can change without
// touching presentation.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Badge       string `json:"badge,omitempty"`
	SoldOut     bool   `json:"sold_out"`
	Description string `json:"description"`
}

// PriceDisplay renders the price in Canadian dollars, e.g. "C$45.00".
func (p *Product) PriceDisplay() string {
	return FormatPrice(p.Price)
}

// BadgeLabel returns the human-readable label for the product's badge, or ""
// when the product has no badge. Unknown badge values pass through unchanged
// so new badges render without a code change.
func (p *Product) BadgeLabel() string {
	switch p.Badge {
	case "":
		return ""
	case BadgeSoldOut:
		return "Sold Out"
	case BadgeNew:
		return "New"
	case BadgeBestseller:
		return "Best Seller"
	case BadgeLimited:
		return "Limited"
	default:
		return p.Badge
	}
}

// CardActionLabel returns the call-to-action text shown on the product card.
func (p *Product) CardActionLabel() string {
	if p.SoldOut {
		return "View Details"
	}
	return "Quick View"
}

// ActionLabel returns the add-to-bag call-to-action text.
func (p *Product) ActionLabel() string {
	if p.SoldOut {
		return "Sold Out"
	}
	return "Add to Bag"
}

// FormatPrice renders a price in cents as Canadian dollars, e.g. "C$45.00".
func FormatPrice(cents int64) string {
	return fmt.Sprintf("C$%d.%02d", cents/100, cents%100)
}

// ValidCategories returns the set of categories products may belong to.
func ValidCategories() []string {
	return []string{CategoryBikini, CategoryLingerie, CategoryBodysuit, CategorySpecial, CategoryAccessories}
}

// IsValidCategory checks whether the given category is one a product may
// belong to. The "all" sentinel is a filter value, not a product category,
// and is rejected here.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories() {
		if c == category {
			return true
		}
	}
	return false
}

// ValidSizes returns the sizes offered for every product.
func ValidSizes() []string {
	return []string{SizeXS, SizeS, SizeM, SizeL, SizeXL}
}

// IsValidSize checks whether the given size is offered.
func IsValidSize(size string) bool {
	for _, s := range ValidSizes() {
		if s == size {
			return true
		}
	}
	return false
}

package memory

import (
	"github.com/nataliastore/StorefrontGo/internal/domain"
	"github.com/nataliastore/StorefrontGo/pkg/slug"
)

// SeedProducts returns the full catalog in display order. Prices are in cents.
func SeedProducts() []domain.Product {
	products := []domain.Product{
		{
			ID:          1,
			Name:        "Bikini Martini",
			Price:       4500,
			Image:       "images/bikini-martini.jpg",
			Category:    domain.CategoryLingerie,
			Badge:       domain.BadgeSoldOut,
			SoldOut:     true,
			Description: "Sparkling rhinestone lingerie set with long sleeves. Perfect for those show-stopping moments.",
		},
		{
			ID:          2,
			Name:        "Tini Weenie Kini",
			Price:       4000,
			Image:       "images/tini-weenie-kini.jpg",
			Category:    domain.CategoryBikini,
			Badge:       domain.BadgeBestseller,
			Description: "Classic string bikini with rhinestone crystal details. Made for beach days and pool parties.",
		},
		{
			ID:          3,
			Name:        "Winkini",
			Price:       4500,
			Image:       "images/winkini.jpg",
			Category:    domain.CategoryLingerie,
			Description: "Flirty two-piece teddy bodysuit. Stretch mesh for the perfect fit.",
		},
		{
			ID:          4,
			Name:        "Talk the Talkini",
			Price:       5000,
			Image:       "images/talk-the-talkini.jpg",
			Category:    domain.CategoryBodysuit,
			Description: "Mesh body stocking that speaks for itself. Bold, confident, irresistible.",
		},
		{
			ID:          5,
			Name:        "Shockini",
			Price:       5000,
			Image:       "images/shockini.jpg",
			Category:    domain.CategoryLingerie,
			Badge:       domain.BadgeNew,
			Description: "Exotic pole dancewear with rhinestone details. Turn the club into your runway.",
		},
		{
			ID:          6,
			Name:        "Peach Bellini",
			Price:       5500,
			Image:       "images/peach-bellini.jpg",
			Category:    domain.CategoryBodysuit,
			Description: "Full body net suit with hot diamond details. Serve looks from head to toe.",
		},
		{
			ID:          7,
			Name:        "Flirtini",
			Price:       5500,
			Image:       "images/flirtini.jpg",
			Category:    domain.CategoryLingerie,
			Description: "Fishnet tube bra and shorts with rhinestone crystals. Flirty and fabulous.",
		},
		{
			ID:          8,
			Name:        "I Know U Lookini",
			Price:       5500,
			Image:       "images/i-know-u-lookini.jpg",
			Category:    domain.CategoryLingerie,
			Description: "Mesh two-piece with iron ring details. They can look, but they can't touch.",
		},
		{
			ID:          9,
			Name:        "Sculptini",
			Price:       5500,
			Image:       "images/sculptini.jpg",
			Category:    domain.CategoryBodysuit,
			Description: "Ultra-thin aurora bodysuit. High elastic smooth fabric that hugs every curve.",
		},
		{
			ID:          10,
			Name:        "Jetskini",
			Price:       5000,
			Image:       "images/jetskini.jpg",
			Category:    domain.CategoryBodysuit,
			Description: "Large mesh fishnet bodystocking. Summer vibes only.",
		},
		{
			ID:          11,
			Name:        "Dripini",
			Price:       6500,
			Image:       "images/dripini.jpg",
			Category:    domain.CategoryLingerie,
			Badge:       domain.BadgeNew,
			Description: "Fishnet garter belt stocking set. The ultimate drip for your next event.",
		},
		{
			ID:          12,
			Name:        "Riskini",
			Price:       6000,
			Image:       "images/riskini.jpg",
			Category:    domain.CategoryBikini,
			Description: "Bling rhinestones fishnet bra and shorts. Worth the risk.",
		},
		{
			ID:          13,
			Name:        "Temptini",
			Price:       5000,
			Image:       "images/temptini.jpg",
			Category:    domain.CategoryBodysuit,
			Description: "Rave festival bodysuit with rhinestones. Pure temptation.",
		},
		{
			ID:          14,
			Name:        "Twerkini",
			Price:       3500,
			Image:       "images/twerkini.jpg",
			Category:    domain.CategoryBikini,
			Badge:       domain.BadgeBestseller,
			Description: "Hollow out bikini set. Perfect for summer vibes and making moves.",
		},
		{
			ID:          15,
			Name:        "Strikini",
			Price:       5500,
			Image:       "images/strikini.jpg",
			Category:    domain.CategoryBodysuit,
			Description: "Aurora smooth bodysuit with high elasticity. Strike a pose.",
		},
		{
			ID:          16,
			Name:        "Workini",
			Price:       5000,
			Image:       "images/workini.jpg",
			Category:    domain.CategoryLingerie,
			Description: "Hot diamond shiny underwear set. Put in the work, look like a million bucks.",
		},
		{
			ID:          17,
			Name:        "Freakini",
			Price:       5500,
			Image:       "images/freakini.jpg",
			Category:    domain.CategoryLingerie,
			Description: "Tight babydoll dress lingerie. Let your freak flag fly.",
		},
		{
			ID:          18,
			Name:        "Kinkini",
			Price:       3500,
			Image:       "images/kinkini.jpg",
			Category:    domain.CategoryLingerie,
			Description: "Fetish latex harness lingerie. Explore your wild side.",
		},
		{
			ID:          19,
			Name:        "Mystery Box",
			Price:       4500,
			Image:       "images/mystery-box.jpg",
			Category:    domain.CategorySpecial,
			Badge:       domain.BadgeLimited,
			Description: "What's in Natalia's beach bag? Surprise pieces hand-selected by Natalia herself.",
		},
		{
			ID:          20,
			Name:        "Push Up Inserts",
			Price:       2000,
			Image:       "images/push-up.jpg",
			Category:    domain.CategoryAccessories,
			Description: "3D silicone bra inserts. The secret to that perfect lift.",
		},
	}

	for i := range products {
		products[i].Slug = slug.Generate(products[i].Name)
	}
	return products
}

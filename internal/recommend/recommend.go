package recommend

import (
	"github.com/XDazaiX/La-Habana-Kitchen/internal/basket"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/catalog"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/models"
)

// DefaultLimit caps the upsell list when the caller passes no limit.
const DefaultLimit = 2

// Recommend picks up to limit add-on candidates: desserts and drinks the
// basket does not already contain, in catalog order. Deterministic, no
// mutation of either input.
func Recommend(b *basket.Basket, cat *catalog.Catalog, limit int) []models.Product {
	if limit <= 0 {
		limit = DefaultLimit
	}
	out := make([]models.Product, 0, limit)
	for _, p := range cat.Products() {
		if p.Category != models.CategoryDesserts && p.Category != models.CategoryDrinks {
			continue
		}
		if b.Contains(p.ID) {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

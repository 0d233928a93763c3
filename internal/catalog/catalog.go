package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/XDazaiX/La-Habana-Kitchen/internal/models"
)

// Catalog is the read-only product list supplied at startup. Order of the
// source file is preserved; display grouping is the presentation layer's job.
type Catalog struct {
	products []models.Product
	byID     map[string]models.Product
}

// New validates and indexes the given products. The shape is trusted beyond
// these checks (the provider owns the data).
func New(products []models.Product) (*Catalog, error) {
	byID := make(map[string]models.Product, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog: product %d has empty id", i)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %q", p.ID)
		}
		if p.UnitPriceCents < 0 {
			return nil, fmt.Errorf("catalog: product %q has negative price", p.ID)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("catalog: product %q has unknown category %q", p.ID, p.Category)
		}
		byID[p.ID] = p
	}
	cp := make([]models.Product, len(products))
	copy(cp, products)
	return &Catalog{products: cp, byID: byID}, nil
}

// Load reads a JSON product array from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return New(products)
}

// Products returns the catalog in source order. Callers must not mutate.
func (c *Catalog) Products() []models.Product { return c.products }

func (c *Catalog) ByID(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) Len() int { return len(c.products) }

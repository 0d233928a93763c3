package basket

import (
	"github.com/XDazaiX/La-Habana-Kitchen/internal/catalog"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/models"
)

// DeliveryFeeCents is charged on any non-empty basket.
const DeliveryFeeCents int64 = 500

const discountPercent int64 = 12

// Basket maps product id -> quantity and is the single source of truth for
// pricing. Entries are removed outright when their quantity reaches zero, so
// the map never holds zero or negative quantities.
type Basket struct {
	cat   *catalog.Catalog
	qty   map[string]int
	order []string // insertion order of first add
}

func New(cat *catalog.Catalog) *Basket {
	return &Basket{
		cat: cat,
		qty: make(map[string]int),
	}
}

// AddUnit increments the quantity for productID by one. Ids the catalog does
// not know are silently ignored: the UI only emits ids it rendered, so this
// is a defensive guard, not an error surface.
func (b *Basket) AddUnit(productID string) {
	if _, ok := b.cat.ByID(productID); !ok {
		return
	}
	if _, present := b.qty[productID]; !present {
		b.order = append(b.order, productID)
	}
	b.qty[productID]++
}

// RemoveUnit decrements by one and deletes the entry at zero. Absent ids are
// a no-op.
func (b *Basket) RemoveUnit(productID string) {
	q, present := b.qty[productID]
	if !present {
		return
	}
	if q-1 <= 0 {
		delete(b.qty, productID)
		for i, id := range b.order {
			if id == productID {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
		return
	}
	b.qty[productID] = q - 1
}

// ApplyDelta routes on sign only: positive deltas add one unit, everything
// else removes one. Callers issue one step at a time; multi-unit deltas are
// not part of the contract.
func (b *Basket) ApplyDelta(productID string, delta int) {
	if delta > 0 {
		b.AddUnit(productID)
		return
	}
	b.RemoveUnit(productID)
}

// LineItems derives the priced lines in first-add order, joining against the
// catalog. Entries whose id no longer resolves are filtered out rather than
// surfaced.
func (b *Basket) LineItems() []models.LineItem {
	items := make([]models.LineItem, 0, len(b.order))
	for _, id := range b.order {
		q := b.qty[id]
		if q <= 0 {
			continue
		}
		p, ok := b.cat.ByID(id)
		if !ok {
			continue
		}
		items = append(items, models.LineItem{
			Product:        p,
			Quantity:       q,
			LineTotalCents: p.UnitPriceCents * int64(q),
		})
	}
	return items
}

func (b *Basket) SubtotalCents() int64 {
	var sum int64
	for _, it := range b.LineItems() {
		sum += it.LineTotalCents
	}
	return sum
}

// ComboEligible reports whether the basket holds at least one item from each
// of mains, sides and drinks. Desserts do not count.
func (b *Basket) ComboEligible() bool {
	var mains, sides, drinks bool
	for _, it := range b.LineItems() {
		switch it.Product.Category {
		case models.CategoryMains:
			mains = true
		case models.CategorySides:
			sides = true
		case models.CategoryDrinks:
			drinks = true
		}
	}
	return mains && sides && drinks
}

// DiscountCents is round(subtotal * 12%) with half-up rounding to the minor
// unit when the combo applies, zero otherwise.
func (b *Basket) DiscountCents() int64 {
	if !b.ComboEligible() {
		return 0
	}
	return (b.SubtotalCents()*discountPercent + 50) / 100
}

func (b *Basket) DeliveryFeeCents() int64 {
	if b.SubtotalCents() > 0 {
		return DeliveryFeeCents
	}
	return 0
}

func (b *Basket) TotalCents() int64 {
	sub := b.SubtotalCents()
	if sub == 0 {
		return 0
	}
	return sub - b.DiscountCents() + b.DeliveryFeeCents()
}

// ItemCount sums all quantities. Badge material, not pricing.
func (b *Basket) ItemCount() int {
	var n int
	for _, q := range b.qty {
		n += q
	}
	return n
}

func (b *Basket) IsEmpty() bool { return len(b.qty) == 0 }

// Contains reports whether the product id currently has an entry.
func (b *Basket) Contains(productID string) bool {
	_, ok := b.qty[productID]
	return ok
}

func (b *Basket) Clear() {
	b.qty = make(map[string]int)
	b.order = nil
}

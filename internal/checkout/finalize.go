package checkout

import (
	"time"

	"github.com/XDazaiX/La-Habana-Kitchen/internal/basket"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/models"
	"github.com/google/uuid"
)

// Finalize assembles the immutable order record from the session and the
// current basket snapshot. Business rules were already enforced by the state
// machine; this is pure assembly and does not re-validate.
func Finalize(s *Session, b *basket.Basket, now time.Time) models.Order {
	lines := b.LineItems()
	items := make([]models.OrderItem, 0, len(lines))
	for _, li := range lines {
		items = append(items, models.OrderItem{
			ProductID:      li.Product.ID,
			Name:           li.Product.Name,
			Quantity:       li.Quantity,
			UnitPriceCents: li.Product.UnitPriceCents,
			LineTotalCents: li.LineTotalCents,
		})
	}
	return models.Order{
		ID:               uuid.New(),
		Number:           s.OrderNumber(),
		Customer:         s.Details(),
		PaymentMethod:    s.PaymentMethod(),
		Items:            items,
		SubtotalCents:    b.SubtotalCents(),
		DiscountCents:    b.DiscountCents(),
		DeliveryFeeCents: b.DeliveryFeeCents(),
		TotalCents:       b.TotalCents(),
		CurrencyCode:     models.CurrencyCUP,
		CreatedAt:        now,
	}
}

package checkout

import (
	"testing"
	"time"

	"github.com/XDazaiX/La-Habana-Kitchen/internal/basket"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/catalog"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/models"
	"github.com/google/uuid"
)

func TestFinalizeSnapshotsBasket(t *testing.T) {
	cat, err := catalog.New([]models.Product{
		{ID: "ropa-vieja", Name: "Ropa Vieja", UnitPriceCents: 4500, Category: models.CategoryMains},
		{ID: "frijoles-negros", Name: "Frijoles Negros", UnitPriceCents: 1500, Category: models.CategorySides},
		{ID: "mojito", Name: "Mojito Cubano", UnitPriceCents: 2700, Category: models.CategoryDrinks},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	b := basket.New(cat)
	b.AddUnit("ropa-vieja")
	b.AddUnit("frijoles-negros")
	b.AddUnit("mojito")

	s := NewSession()
	if err := s.SubmitDetails(validDetails, NewNumberGenerator()); err != nil {
		t.Fatalf("SubmitDetails: %v", err)
	}
	if err := s.SelectPayment(models.PaymentCash); err != nil {
		t.Fatalf("SelectPayment: %v", err)
	}

	now := time.Date(2026, 8, 28, 19, 30, 0, 0, time.UTC)
	ord := Finalize(s, b, now)

	if ord.Number != s.OrderNumber() {
		t.Fatalf("number = %s, want %s", ord.Number, s.OrderNumber())
	}
	if ord.Customer != validDetails {
		t.Fatalf("customer = %+v", ord.Customer)
	}
	if ord.PaymentMethod != models.PaymentCash {
		t.Fatalf("payment = %s", ord.PaymentMethod)
	}
	if len(ord.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(ord.Items))
	}
	if ord.Items[0].ProductID != "ropa-vieja" || ord.Items[0].LineTotalCents != 4500 {
		t.Fatalf("first item = %+v", ord.Items[0])
	}
	if ord.SubtotalCents != 8700 || ord.DiscountCents != 1044 || ord.DeliveryFeeCents != 500 || ord.TotalCents != 8156 {
		t.Fatalf("totals = %d/%d/%d/%d, want 8700/1044/500/8156",
			ord.SubtotalCents, ord.DiscountCents, ord.DeliveryFeeCents, ord.TotalCents)
	}
	if ord.CurrencyCode != models.CurrencyCUP {
		t.Fatalf("currency = %s", ord.CurrencyCode)
	}
	if !ord.CreatedAt.Equal(now) {
		t.Fatalf("created at = %s", ord.CreatedAt)
	}
	if ord.ID == uuid.Nil {
		t.Fatalf("order id must be assigned")
	}
}

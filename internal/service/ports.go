package service

import (
	"context"

	"github.com/XDazaiX/La-Habana-Kitchen/internal/models"
)

// OrderSink receives each confirmed order exactly once. The storefront treats
// it as fire-and-forget: a failing sink is logged, never surfaced to the
// customer flow.
type OrderSink interface {
	PublishOrderConfirmed(ctx context.Context, o models.Order) error
}

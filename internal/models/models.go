package models

import (
	"time"

	"github.com/google/uuid"
)

const CurrencyCUP = "CUP"

// Category is a closed enumeration; the catalog loader rejects anything else.
type Category string

const (
	CategoryMains    Category = "mains"
	CategorySides    Category = "sides"
	CategoryDesserts Category = "desserts"
	CategoryDrinks   Category = "drinks"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMains, CategorySides, CategoryDesserts, CategoryDrinks:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash           PaymentMethod = "cash"
	PaymentMobileTransfer PaymentMethod = "mobile-transfer"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentMobileTransfer
}

// Product is owned by the catalog and immutable after load.
type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	UnitPriceCents int64    `json:"price_cents"`
	Category       Category `json:"category"`
}

// LineItem is derived from the basket on every read, never stored.
type LineItem struct {
	Product        Product `json:"product"`
	Quantity       int     `json:"quantity"`
	LineTotalCents int64   `json:"line_total_cents"`
}

// CustomerInfo is the delivery form payload. Notes is the only optional field.
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// OrderItem is a snapshot of a line item frozen into a confirmed order.
type OrderItem struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	LineTotalCents int64  `json:"line_total_cents"`
}

// Order is created once per confirmed checkout and never mutated afterwards.
type Order struct {
	ID               uuid.UUID     `json:"id"`
	Number           string        `json:"number"`
	Customer         CustomerInfo  `json:"customer"`
	PaymentMethod    PaymentMethod `json:"payment_method"`
	Items            []OrderItem   `json:"items"`
	SubtotalCents    int64         `json:"subtotal_cents"`
	DiscountCents    int64         `json:"discount_cents"`
	DeliveryFeeCents int64         `json:"delivery_fee_cents"`
	TotalCents       int64         `json:"total_cents"`
	CurrencyCode     string        `json:"currency"`
	CreatedAt        time.Time     `json:"created_at"`
}

package dto

// UpdateItemRequest moves a basket quantity by one step. Delta carries the
// direction only: positive adds a unit, zero or negative removes one.
type UpdateItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Delta     int    `json:"delta"`
}

type DeliveryDetailsRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type PaymentRequest struct {
	Method string `json:"method" binding:"required"`
}

// InsightsUnavailable is returned while no metrics snapshot has been fetched.
type InsightsUnavailable struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

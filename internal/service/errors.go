package service

import "errors"

var (
	ErrCheckoutNotOpen = errors.New("checkout is not open")
	ErrEmptyBasket     = errors.New("basket is empty")
)

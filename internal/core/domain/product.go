package domain

import "github.com/govalues/decimal"

// ProductSnapshot is a transient view of a product returned by the product
// service. It is copied into an OrderItem and never persisted on its own.
type ProductSnapshot struct {
	ID    uint64
	Name  string
	Price decimal.Decimal
}

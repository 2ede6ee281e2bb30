package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// ParseOrderStatus validates a raw status value against the closed enumeration.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), nil
	}
	return "", ErrUnknownOrderStatus
}

type Order struct {
	ID              uint64
	UserID          uint64
	TotalAmount     decimal.Decimal
	Status          OrderStatus
	OrderDate       time.Time
	ShippingAddress string
	Items           []OrderItem
}

// OrderItem is owned by exactly one Order. TotalPrice is computed once at
// construction and not recomputed on later mutation.
type OrderItem struct {
	ID          uint64
	OrderID     uint64
	ProductID   uint64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// NewOrderItem builds an item with TotalPrice = unitPrice * quantity.
func NewOrderItem(productID uint64, productName string, quantity int, unitPrice decimal.Decimal) (OrderItem, error) {
	qty, err := decimal.New(int64(quantity), 0)
	if err != nil {
		return OrderItem{}, err
	}
	total, err := unitPrice.Mul(qty)
	if err != nil {
		return OrderItem{}, err
	}
	return OrderItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  total,
	}, nil
}

// TotalAmount sums item total prices with exact decimal arithmetic.
func TotalAmount(items []OrderItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		sum, err := total.Add(item.TotalPrice)
		if err != nil {
			return decimal.Zero, err
		}
		total = sum
	}
	return total, nil
}

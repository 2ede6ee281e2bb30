package port

import (
	"context"

	"github.com/ecomward/order-service/internal/core/domain"
)

// OrderRequest is the inbound payload for order creation.
type OrderRequest struct {
	UserID          uint64
	ShippingAddress string
	Items           []OrderItemRequest
}

type OrderItemRequest struct {
	ProductID uint64
	Quantity  int
}

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	CreateOrder(ctx context.Context, req *OrderRequest) (*domain.Order, error)
	GetOrderByID(ctx context.Context, orderID uint64) (*domain.Order, error)
	GetOrdersByUserID(ctx context.Context, userID uint64) ([]*domain.Order, error)
	GetAllOrders(ctx context.Context) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint64, status domain.OrderStatus) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID uint64) error
}

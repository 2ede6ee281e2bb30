package port

import (
	"context"

	"github.com/ecomward/order-service/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// SaveOrder persists the order and its items, assigning identifiers on
	// first save. The returned order carries all store-assigned fields.
	SaveOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	CountOrders(ctx context.Context) (int64, error)
}

package port

import (
	"context"

	"github.com/ecomward/order-service/internal/core/domain"
)

//go:generate mockgen -source=client.go -destination=mock/client.go -package=mock

// UserServiceClient checks user existence in the user service. A false result
// covers both "not found" and any transport failure: user absence is treated
// as recoverable information, not an error.
type UserServiceClient interface {
	ValidateUser(ctx context.Context, userID uint64) bool
}

// ProductServiceClient resolves product details. Unlike user validation, any
// failure here is an error the caller must handle.
type ProductServiceClient interface {
	GetProduct(ctx context.Context, productID uint64) (*domain.ProductSnapshot, error)
}

// NotificationServiceClient delivers lifecycle notifications. All operations
// are best-effort: the returned error is informational and callers discard it.
type NotificationServiceClient interface {
	SendOrderConfirmation(ctx context.Context, orderID uint64, userID uint64) error
	SendOrderStatusUpdate(ctx context.Context, orderID uint64, userID uint64, status domain.OrderStatus) error
	SendOrderCancellation(ctx context.Context, orderID uint64, userID uint64) error
}

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ecomward/order-service/internal/core/domain"
	"github.com/ecomward/order-service/internal/core/port"
	"go.uber.org/zap"
)

// Service orchestrates the order lifecycle: user validation, product
// resolution, persistence and best-effort notification, with one trace per
// mutating request.
type Service struct {
	repo          port.Repository
	users         port.UserServiceClient
	products      port.ProductServiceClient
	notifications port.NotificationServiceClient
	telemetry     port.Telemetry
	logger        *zap.Logger
}

func NewService(repo port.Repository, users port.UserServiceClient,
	products port.ProductServiceClient, notifications port.NotificationServiceClient,
	telemetry port.Telemetry, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:          repo,
		users:         users,
		products:      products,
		notifications: notifications,
		telemetry:     telemetry,
		logger:        logger,
	}, nil
}

func (s *Service) CreateOrder(ctx context.Context, req *port.OrderRequest) (order *domain.Order, err error) {
	userID := strconv.FormatUint(req.UserID, 10)
	ctx, _ = s.telemetry.StartTrace(ctx, "create_order", http.MethodPost, "/api/orders", userID)
	// The trace must be finished on every exit, and never before the error
	// is known. Side-channel emission cannot mask the business result.
	defer func() {
		if err != nil {
			s.telemetry.FinishTrace(ctx, "create_order", http.StatusInternalServerError, err.Error())
		}
	}()

	s.telemetry.LogEvent(ctx, "Validating user: "+userID, "INFO")

	if !s.users.ValidateUser(ctx, req.UserID) {
		s.telemetry.LogEvent(ctx, "User validation failed: "+userID, "ERROR")
		s.logger.Warn("user validation failed", zap.Uint64("user", req.UserID))
		return nil, domain.ErrUserNotFound
	}

	s.telemetry.LogEvent(ctx, "User validated successfully: "+userID, "INFO")
	s.telemetry.LogEvent(ctx, fmt.Sprintf("Processing %d order items", len(req.Items)), "INFO")

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		product, perr := s.products.GetProduct(ctx, itemReq.ProductID)
		if perr != nil {
			s.logger.Error("product resolution failed",
				zap.Uint64("product", itemReq.ProductID), zap.Error(perr))
			return nil, domain.ErrProductResolution
		}

		item, merr := domain.NewOrderItem(product.ID, product.Name, itemReq.Quantity, product.Price)
		if merr != nil {
			s.logger.Error("order item math error", zap.Error(merr))
			return nil, domain.ErrInternal
		}
		items = append(items, item)
	}

	totalAmount, terr := domain.TotalAmount(items)
	if terr != nil {
		s.logger.Error("total amount math error", zap.Error(terr))
		return nil, domain.ErrInternal
	}

	order = &domain.Order{
		UserID:          req.UserID,
		ShippingAddress: req.ShippingAddress,
		Status:          domain.OrderStatusPending,
		OrderDate:       time.Now(),
		TotalAmount:     totalAmount,
		Items:           items,
	}

	savedOrder, serr := s.repo.SaveOrder(ctx, order)
	if serr != nil {
		s.logger.Error("save order", zap.Error(serr))
		return nil, serr
	}
	for i := range savedOrder.Items {
		savedOrder.Items[i].OrderID = savedOrder.ID
	}

	s.telemetry.LogEvent(ctx, fmt.Sprintf("Order saved to database with ID: %d", savedOrder.ID), "INFO")

	_ = s.notifications.SendOrderConfirmation(ctx, savedOrder.ID, savedOrder.UserID)

	s.telemetry.LogEvent(ctx, "Order created successfully with total amount: "+totalAmount.String(), "INFO")
	s.telemetry.FinishTrace(ctx, "create_order", http.StatusOK, "")

	return savedOrder, nil
}

func (s *Service) GetOrderByID(ctx context.Context, orderID uint64) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("read order", zap.Uint64("order", orderID), zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (s *Service) GetOrdersByUserID(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list orders for user", zap.Uint64("user", userID), zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) GetAllOrders(ctx context.Context) ([]*domain.Order, error) {
	list, err := s.repo.ListOrders(ctx)
	if err != nil {
		s.logger.Error("list orders", zap.Error(err))
		return nil, err
	}
	return list, nil
}

// UpdateOrderStatus overwrites the status field only. No transition graph is
// enforced: any status may replace any other.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID uint64, status domain.OrderStatus) (*domain.Order, error) {
	s.telemetry.LogEvent(ctx, fmt.Sprintf("Updating order status: %d to %s", orderID, status), "INFO")

	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order.Status = status
	updatedOrder, err := s.repo.SaveOrder(ctx, order)
	if err != nil {
		s.logger.Error("update order status", zap.Uint64("order", orderID), zap.Error(err))
		return nil, err
	}

	s.telemetry.LogEvent(ctx, fmt.Sprintf("Order status updated successfully: %d", orderID), "INFO")

	_ = s.notifications.SendOrderStatusUpdate(ctx, updatedOrder.ID, updatedOrder.UserID, status)

	return updatedOrder, nil
}

// CancelOrder sets the status to CANCELLED unconditionally. Cancellation is a
// status value, not a deletion.
func (s *Service) CancelOrder(ctx context.Context, orderID uint64) error {
	s.telemetry.LogEvent(ctx, fmt.Sprintf("Cancelling order: %d", orderID), "INFO")

	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}

	order.Status = domain.OrderStatusCancelled
	if _, err := s.repo.SaveOrder(ctx, order); err != nil {
		s.logger.Error("cancel order", zap.Uint64("order", orderID), zap.Error(err))
		return err
	}

	s.telemetry.LogEvent(ctx, fmt.Sprintf("Order cancelled successfully: %d", orderID), "INFO")

	_ = s.notifications.SendOrderCancellation(ctx, order.ID, order.UserID)

	return nil
}

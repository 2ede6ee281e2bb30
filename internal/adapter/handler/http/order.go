package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ecomward/order-service/internal/core/domain"
	"github.com/ecomward/order-service/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type OrderItemReq struct {
	ProductID uint64 `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type OrderReq struct {
	UserID          uint64         `json:"userId"`
	ShippingAddress string         `json:"shippingAddress"`
	Items           []OrderItemReq `json:"items"`
}

type OrderItemResp struct {
	ID          uint64          `json:"id"`
	ProductID   uint64          `json:"productId"`
	ProductName string          `json:"productName,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

type OrderResp struct {
	ID              uint64          `json:"id"`
	UserID          uint64          `json:"userId"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          string          `json:"status"`
	OrderDate       time.Time       `json:"orderDate"`
	ShippingAddress string          `json:"shippingAddress,omitempty"`
	Items           []OrderItemResp `json:"orderItems"`
}

type OrderStatusUpdateReq struct {
	Status string `json:"status"`
}

func newOrderResp(o *domain.Order) OrderResp {
	items := make([]OrderItemResp, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResp{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}
	return OrderResp{
		ID:              o.ID,
		UserID:          o.UserID,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		OrderDate:       o.OrderDate,
		ShippingAddress: o.ShippingAddress,
		Items:           items,
	}
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	var req OrderReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	items := make([]port.OrderItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, port.OrderItemRequest{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := oh.service.CreateOrder(ctx, &port.OrderRequest{
		UserID:          req.UserID,
		ShippingAddress: req.ShippingAddress,
		Items:           items,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

func (oh *OrderHandler) GetOrderByID(ctx *gin.Context) {
	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := oh.service.GetOrderByID(ctx, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

func (oh *OrderHandler) ListOrdersByUser(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userId"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	list, err := oh.service.GetOrdersByUserID(ctx, userID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]OrderResp, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResp(o))
	}

	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	list, err := oh.service.GetAllOrders(ctx)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]OrderResp, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResp(o))
	}

	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) UpdateOrderStatus(ctx *gin.Context) {
	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	var req OrderStatusUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	order, err := oh.service.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	if err := oh.service.CancelOrder(ctx, orderID); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

package seed

import (
	"context"
	"time"

	"github.com/ecomward/order-service/internal/core/domain"
	"github.com/ecomward/order-service/internal/core/port"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type seedItem struct {
	productID   uint64
	productName string
	quantity    int
	unitPrice   string
}

type seedOrder struct {
	userID          uint64
	shippingAddress string
	status          domain.OrderStatus
	age             time.Duration
	items           []seedItem
}

var seedOrders = []seedOrder{
	{
		userID: 1, shippingAddress: "123 Main St, Anytown, ST 12345",
		status: domain.OrderStatusDelivered, age: 5 * 24 * time.Hour,
		items: []seedItem{
			{1, "Gaming Laptop Pro", 1, "1299.99"},
			{2, "Wireless Gaming Mouse", 1, "49.99"},
			{3, "Mechanical Keyboard", 1, "129.99"},
		},
	},
	{
		userID: 2, shippingAddress: "456 Oak Ave, Springfield, IL 62701",
		status: domain.OrderStatusDelivered, age: 3 * 24 * time.Hour,
		items: []seedItem{
			{6, "Microservices Architecture", 2, "39.99"},
			{7, "Spring Boot in Action", 1, "44.99"},
			{8, "Clean Code", 1, "34.99"},
		},
	},
	{
		userID: 3, shippingAddress: "789 Pine Rd, Austin, TX 78701",
		status: domain.OrderStatusShipped, age: 2 * 24 * time.Hour,
		items: []seedItem{
			{9, "Smart Coffee Maker", 1, "149.99"},
			{10, "LED Desk Lamp", 2, "29.99"},
			{5, "Wireless Headphones", 1, "199.99"},
		},
	},
	{
		userID: 4, shippingAddress: "321 Elm St, Denver, CO 80201",
		status: domain.OrderStatusProcessing, age: 24 * time.Hour,
		items: []seedItem{
			{11, "Yoga Mat Premium", 1, "24.99"},
			{12, "Water Bottle Insulated", 2, "19.99"},
			{13, "Cotton T-Shirt", 3, "14.99"},
		},
	},
	{
		userID: 5, shippingAddress: "654 Maple Dr, Seattle, WA 98101",
		status: domain.OrderStatusPending, age: 6 * time.Hour,
		items: []seedItem{
			{14, "Denim Jeans", 2, "59.99"},
			{15, "Hoodie Pullover", 1, "39.99"},
			{13, "Cotton T-Shirt", 4, "14.99"},
		},
	},
	{
		userID: 6, shippingAddress: "987 Cedar Ln, Portland, OR 97201",
		status: domain.OrderStatusCancelled, age: 3 * time.Hour,
		items: []seedItem{
			{4, "4K Webcam", 1, "89.99"},
			{5, "Wireless Headphones", 1, "199.99"},
		},
	},
}

// Load inserts sample orders on first start. Runs only against an empty
// store; failures are reported to the caller but are safe to treat as
// non-fatal.
func Load(ctx context.Context, repo port.Repository, log *zap.Logger) error {
	count, err := repo.CountOrders(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Info("loading order seed data")

	for _, so := range seedOrders {
		order, err := buildOrder(so)
		if err != nil {
			return err
		}
		if _, err := repo.SaveOrder(ctx, order); err != nil {
			return err
		}
	}

	log.Info("order seed data loaded", zap.Int("orders", len(seedOrders)))
	return nil
}

func buildOrder(so seedOrder) (*domain.Order, error) {
	items := make([]domain.OrderItem, 0, len(so.items))
	for _, si := range so.items {
		price, err := decimal.Parse(si.unitPrice)
		if err != nil {
			return nil, err
		}
		item, err := domain.NewOrderItem(si.productID, si.productName, si.quantity, price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	total, err := domain.TotalAmount(items)
	if err != nil {
		return nil, err
	}

	return &domain.Order{
		UserID:          so.userID,
		ShippingAddress: so.shippingAddress,
		Status:          so.status,
		OrderDate:       time.Now().Add(-so.age),
		TotalAmount:     total,
		Items:           items,
	}, nil
}

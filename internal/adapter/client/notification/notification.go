package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ecomward/order-service/internal/adapter/config"
	"github.com/ecomward/order-service/internal/core/domain"
	"github.com/ecomward/order-service/internal/core/port"
	"go.uber.org/zap"
)

// Client wraps the notification service. Every send is best-effort: failures
// are logged and reported back only as an informational error that callers
// discard. A dead notification backend never fails an order operation.
type Client struct {
	baseURL    string
	httpClient *http.Client
	telemetry  port.Telemetry
	logger     *zap.Logger
}

func NewClient(cfg *config.NotificationService, telemetry port.Telemetry, log *zap.Logger) (*Client, error) {
	return &Client{
		baseURL:   cfg.BaseURL,
		telemetry: telemetry,
		logger:    log,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}, nil
}

func (c *Client) SendOrderConfirmation(ctx context.Context, orderID uint64, userID uint64) error {
	return c.send(ctx, "order-confirmation", "send_order_confirmation",
		map[string]any{"orderId": orderID, "userId": userID})
}

func (c *Client) SendOrderStatusUpdate(ctx context.Context, orderID uint64, userID uint64, status domain.OrderStatus) error {
	return c.send(ctx, "order-status", "send_order_status_update",
		map[string]any{"orderId": orderID, "userId": userID, "status": string(status)})
}

func (c *Client) SendOrderCancellation(ctx context.Context, orderID uint64, userID uint64) error {
	return c.send(ctx, "order-cancellation", "send_order_cancellation",
		map[string]any{"orderId": orderID, "userId": userID})
}

func (c *Client) send(ctx context.Context, path string, operation string, payload map[string]any) error {
	start := time.Now()
	url := c.baseURL + "/api/notifications/" + path

	err := c.post(ctx, url, payload)

	statusCode := http.StatusOK
	if err != nil {
		statusCode = http.StatusInternalServerError
	}
	c.telemetry.RecordServiceCall(ctx, "notification-service", operation,
		http.MethodPost, url, time.Since(start), statusCode)

	if err != nil {
		c.logger.Warn("notification delivery failed", zap.String("url", url), zap.Error(err))
		return err
	}
	return nil
}

func (c *Client) post(ctx context.Context, url string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error on payload encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error on %s : %w", url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request error %s : %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("bad response %v for request %s", resp.StatusCode, url)
	}
	return nil
}

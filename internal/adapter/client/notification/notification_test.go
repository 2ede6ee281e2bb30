package notification_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecomward/order-service/internal/adapter/client/notification"
	"github.com/ecomward/order-service/internal/adapter/config"
	"github.com/ecomward/order-service/internal/core/domain"
	"github.com/ecomward/order-service/internal/core/port/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_Send(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	type sendTest struct {
		name       string
		send       func(c *notification.Client) error
		expPath    string
		expOp      string
		expPayload map[string]any
	}

	tests := []sendTest{
		{
			name: "Order confirmation",
			send: func(c *notification.Client) error {
				return c.SendOrderConfirmation(context.Background(), 42, 1)
			},
			expPath:    "/api/notifications/order-confirmation",
			expOp:      "send_order_confirmation",
			expPayload: map[string]any{"orderId": float64(42), "userId": float64(1)},
		},
		{
			name: "Status update",
			send: func(c *notification.Client) error {
				return c.SendOrderStatusUpdate(context.Background(), 42, 1, domain.OrderStatusShipped)
			},
			expPath:    "/api/notifications/order-status",
			expOp:      "send_order_status_update",
			expPayload: map[string]any{"orderId": float64(42), "userId": float64(1), "status": "SHIPPED"},
		},
		{
			name: "Cancellation",
			send: func(c *notification.Client) error {
				return c.SendOrderCancellation(context.Background(), 42, 1)
			},
			expPath:    "/api/notifications/order-cancellation",
			expOp:      "send_order_cancellation",
			expPayload: map[string]any{"orderId": float64(42), "userId": float64(1)},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, test.expPath, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var payload map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
				assert.Equal(t, test.expPayload, payload)

				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			telemetry := mock.NewMockTelemetry(mockCtrl)
			telemetry.EXPECT().RecordServiceCall(gomock.Any(), "notification-service", test.expOp,
				http.MethodPost, server.URL+test.expPath, gomock.Any(), http.StatusOK)

			c, err := notification.NewClient(&config.NotificationService{BaseURL: server.URL}, telemetry, logger)
			require.NoError(t, err)

			assert.NoError(t, test.send(c))
		})
	}
}

func TestClient_Send_Failure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	telemetry := mock.NewMockTelemetry(mockCtrl)
	telemetry.EXPECT().RecordServiceCall(gomock.Any(), "notification-service", "send_order_confirmation",
		http.MethodPost, gomock.Any(), gomock.Any(), http.StatusInternalServerError)

	c, err := notification.NewClient(&config.NotificationService{BaseURL: server.URL}, telemetry, logger)
	require.NoError(t, err)

	assert.Error(t, c.SendOrderConfirmation(context.Background(), 42, 1))
}

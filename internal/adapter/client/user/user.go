package user

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ecomward/order-service/internal/adapter/config"
	"github.com/ecomward/order-service/internal/core/port"
	"go.uber.org/zap"
)

// Client wraps the user service. Validation degrades to a boolean: a missing
// user and a transport failure both count as "not valid", recorded as 404 in
// telemetry.
type Client struct {
	baseURL    string
	httpClient *http.Client
	telemetry  port.Telemetry
	logger     *zap.Logger
}

func NewClient(cfg *config.UserService, telemetry port.Telemetry, log *zap.Logger) (*Client, error) {
	return &Client{
		baseURL:   cfg.BaseURL,
		telemetry: telemetry,
		logger:    log,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}, nil
}

func (c *Client) ValidateUser(ctx context.Context, userID uint64) bool {
	start := time.Now()
	url := c.baseURL + "/api/users/" + strconv.FormatUint(userID, 10)

	valid := c.fetchUser(ctx, url)

	statusCode := http.StatusOK
	if !valid {
		statusCode = http.StatusNotFound
	}
	c.telemetry.RecordServiceCall(ctx, "user-service", "validate_user",
		http.MethodGet, url, time.Since(start), statusCode)

	return valid
}

func (c *Client) fetchUser(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return false
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("user service request failed", zap.String("url", url), zap.Error(err))
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
}

package product

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ecomward/order-service/internal/adapter/config"
	"github.com/ecomward/order-service/internal/core/domain"
	"github.com/ecomward/order-service/internal/core/port"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// Client wraps the product service. A product that cannot be resolved is a
// hard error for the caller, recorded as 500 in telemetry.
type Client struct {
	baseURL    string
	httpClient *http.Client
	telemetry  port.Telemetry
	logger     *zap.Logger
}

// productResponse mirrors the JSON payload from the product service.
type productResponse struct {
	ID    uint64  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func NewClient(cfg *config.ProductService, telemetry port.Telemetry, log *zap.Logger) (*Client, error) {
	return &Client{
		baseURL:   cfg.BaseURL,
		telemetry: telemetry,
		logger:    log,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}, nil
}

func (c *Client) GetProduct(ctx context.Context, productID uint64) (*domain.ProductSnapshot, error) {
	start := time.Now()
	url := c.baseURL + "/api/products/" + strconv.FormatUint(productID, 10)

	snapshot, err := c.fetchProduct(ctx, url)

	statusCode := http.StatusOK
	if err != nil {
		statusCode = http.StatusInternalServerError
	}
	c.telemetry.RecordServiceCall(ctx, "product-service", "get_product",
		http.MethodGet, url, time.Since(start), statusCode)

	if err != nil {
		c.logger.Error("product request failed", zap.String("url", url), zap.Error(err))
		return nil, err
	}
	return snapshot, nil
}

func (c *Client) fetchProduct(ctx context.Context, url string) (*domain.ProductSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error on %s : %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error %s : %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad response %v for request %s", resp.StatusCode, url)
	}

	var result productResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}

	price, err := decimal.NewFromFloat64(result.Price)
	if err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}

	return &domain.ProductSnapshot{
		ID:    result.ID,
		Name:  result.Name,
		Price: price,
	}, nil
}

package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthHandler reports the reachability of the sibling services this service
// depends on. Probes use short timeouts so a dead dependency cannot block the
// health endpoint.
type HealthHandler struct {
	Handler
	probes     map[string]string
	httpClient *http.Client
}

func NewHealthHandler(probes map[string]string, logger *zap.Logger) (*HealthHandler, error) {
	return &HealthHandler{
		Handler: *NewHandler(logger),
		probes:  probes,
		httpClient: &http.Client{
			Timeout: 3 * time.Second,
		},
	}, nil
}

type probeResult struct {
	Status         string `json:"status"`
	URL            string `json:"url"`
	ResponseTimeMs int64  `json:"responseTimeMs"`
	Error          string `json:"error,omitempty"`
}

func (hh *HealthHandler) Health(ctx *gin.Context) {
	overall := "UP"
	details := make(map[string]probeResult, len(hh.probes))

	for name, baseURL := range hh.probes {
		result := hh.probe(ctx, baseURL)
		if result.Status != "UP" {
			overall = "DOWN"
		}
		details[name] = result
	}

	statusCode := http.StatusOK
	if overall != "UP" {
		statusCode = http.StatusServiceUnavailable
	}
	ctx.JSON(statusCode, gin.H{"status": overall, "components": details})
}

func (hh *HealthHandler) probe(ctx context.Context, baseURL string) probeResult {
	start := time.Now()
	result := probeResult{URL: baseURL}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", http.NoBody)
	if err != nil {
		result.Status = "DOWN"
		result.Error = err.Error()
		return result
	}

	resp, err := hh.httpClient.Do(req)
	result.ResponseTimeMs = time.Since(start).Milliseconds()
	if err != nil {
		result.Status = "DOWN"
		result.Error = err.Error()
		return result
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		result.Status = "DOWN"
		result.Error = resp.Status
		return result
	}

	result.Status = "UP"
	return result
}

package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/ecomward/order-service/internal/adapter/config"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	eventTypeSpan = "SPAN"
	eventTypeLog  = "LOG"

	statusSuccess = "SUCCESS"
	statusError   = "ERROR"
)

type ctxKey struct{}

// traceState is the per-request trace carrier. It travels on the request's
// context.Context, so concurrent requests can never observe each other's ids.
// FinishTrace clears it in place: the same request sees an empty context
// afterwards even though context values are immutable.
type traceState struct {
	mu        sync.Mutex
	traceID   string
	spanID    string
	startTime time.Time
	active    bool
}

// snapshot returns the bound ids, or ok=false after the trace was finished.
func (s *traceState) snapshot() (traceID, spanID string, startTime time.Time, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.traceID, s.spanID, s.startTime, s.active
}

func (s *traceState) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.traceID = ""
	s.spanID = ""
	s.startTime = time.Time{}
	s.active = false
}

func stateFromContext(ctx context.Context) *traceState {
	state, _ := ctx.Value(ctxKey{}).(*traceState)
	return state
}

// Event mirrors the telemetry backend's JSON contract.
type Event struct {
	TraceID        string    `json:"traceId,omitempty"`
	SpanID         string    `json:"spanId,omitempty"`
	ParentSpanID   string    `json:"parentSpanId,omitempty"`
	ServiceName    string    `json:"serviceName"`
	Operation      string    `json:"operation"`
	EventType      string    `json:"eventType"`
	Timestamp      time.Time `json:"timestamp"`
	DurationMs     int64     `json:"durationMs,omitempty"`
	Status         string    `json:"status,omitempty"`
	HTTPMethod     string    `json:"httpMethod,omitempty"`
	HTTPUrl        string    `json:"httpUrl,omitempty"`
	HTTPStatusCode int       `json:"httpStatusCode,omitempty"`
	UserID         string    `json:"userId,omitempty"`
	ErrorMessage   string    `json:"errorMessage,omitempty"`
	Message        string    `json:"message,omitempty"`
	LogLevel       string    `json:"logLevel,omitempty"`
	Metadata       string    `json:"metadata,omitempty"`
}

// Client posts telemetry events to the telemetry backend. Delivery is
// fire-and-forget: transport errors and non-2xx responses are swallowed, a
// telemetry outage must never affect a business operation.
type Client struct {
	serviceName string
	eventsURL   string
	httpClient  *http.Client
	logger      *zap.Logger
}

func NewClient(cfg *config.Telemetry, log *zap.Logger) (*Client, error) {
	return &Client{
		serviceName: cfg.ServiceName,
		eventsURL:   cfg.BaseURL + "/api/telemetry/events",
		logger:      log,
		httpClient: &http.Client{
			Timeout: 3 * time.Second,
		},
	}, nil
}

func (c *Client) StartTrace(ctx context.Context, operation, httpMethod, httpURL, userID string) (context.Context, string) {
	state := &traceState{
		traceID:   "trace_" + uuid.NewString(),
		spanID:    "span_" + uuid.NewString(),
		startTime: time.Now(),
		active:    true,
	}
	ctx = context.WithValue(ctx, ctxKey{}, state)

	c.emit(&Event{
		TraceID:     state.traceID,
		SpanID:      state.spanID,
		ServiceName: c.serviceName,
		Operation:   operation,
		EventType:   eventTypeSpan,
		Timestamp:   time.Now(),
		Status:      statusSuccess,
		HTTPMethod:  httpMethod,
		HTTPUrl:     httpURL,
		UserID:      userID,
	})

	return ctx, state.traceID
}

func (c *Client) FinishTrace(ctx context.Context, operation string, httpStatusCode int, errMessage string) {
	state := stateFromContext(ctx)
	if state == nil {
		return
	}
	traceID, spanID, startTime, ok := state.snapshot()
	if !ok {
		return
	}

	status := statusSuccess
	if errMessage != "" {
		status = statusError
	}

	c.emit(&Event{
		TraceID:        traceID,
		SpanID:         spanID,
		ServiceName:    c.serviceName,
		Operation:      operation + "_complete",
		EventType:      eventTypeSpan,
		Timestamp:      time.Now(),
		DurationMs:     time.Since(startTime).Milliseconds(),
		Status:         status,
		HTTPStatusCode: httpStatusCode,
		ErrorMessage:   errMessage,
	})

	state.clear()
}

func (c *Client) RecordServiceCall(ctx context.Context, serviceName, operation, httpMethod, httpURL string, duration time.Duration, statusCode int) {
	var traceID, parentSpanID string
	if state := stateFromContext(ctx); state != nil {
		if tid, sid, _, ok := state.snapshot(); ok {
			traceID = tid
			parentSpanID = sid
		}
	}

	status := statusSuccess
	if statusCode >= http.StatusBadRequest {
		status = statusError
	}

	c.emit(&Event{
		TraceID:        traceID,
		SpanID:         "span_" + uuid.NewString(),
		ParentSpanID:   parentSpanID,
		ServiceName:    c.serviceName,
		Operation:      serviceName + "_" + operation,
		EventType:      eventTypeSpan,
		Timestamp:      time.Now(),
		DurationMs:     duration.Milliseconds(),
		Status:         status,
		HTTPMethod:     httpMethod,
		HTTPUrl:        httpURL,
		HTTPStatusCode: statusCode,
		Metadata:       "Outbound call to " + serviceName,
	})
}

func (c *Client) LogEvent(ctx context.Context, message, level string) {
	var traceID, spanID string
	if state := stateFromContext(ctx); state != nil {
		if tid, sid, _, ok := state.snapshot(); ok {
			traceID = tid
			spanID = sid
		}
	}

	c.emit(&Event{
		TraceID:     traceID,
		SpanID:      spanID,
		ServiceName: c.serviceName,
		Operation:   "log_event",
		EventType:   eventTypeLog,
		Timestamp:   time.Now(),
		Message:     message,
		LogLevel:    level,
	})
}

func (c *Client) emit(event *Event) {
	body, err := json.Marshal(event)
	if err != nil {
		c.logger.Debug("telemetry event marshal failed", zap.Error(err))
		return
	}

	req, err := http.NewRequest(http.MethodPost, c.eventsURL, bytes.NewReader(body))
	if err != nil {
		c.logger.Debug("telemetry request build failed", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("telemetry delivery failed", zap.Error(err))
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

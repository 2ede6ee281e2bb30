package telemetry_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ecomward/order-service/internal/adapter/config"
	"github.com/ecomward/order-service/internal/adapter/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type eventSink struct {
	mu     sync.Mutex
	events []telemetry.Event
}

func (s *eventSink) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/telemetry/events", r.URL.Path)

		var event telemetry.Event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&event))

		s.mu.Lock()
		s.events = append(s.events, event)
		s.mu.Unlock()

		w.WriteHeader(http.StatusOK)
	}
}

func (s *eventSink) all() []telemetry.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]telemetry.Event(nil), s.events...)
}

func newTestClient(t *testing.T, baseURL string) *telemetry.Client {
	logger, _ := zap.NewProduction()
	client, err := telemetry.NewClient(&config.Telemetry{
		BaseURL:     baseURL,
		ServiceName: "order-service",
	}, logger)
	require.NoError(t, err)
	return client
}

func TestClient_TraceLifecycle(t *testing.T) {
	sink := &eventSink{}
	server := httptest.NewServer(sink.handler(t))
	defer server.Close()

	client := newTestClient(t, server.URL)

	ctx, traceID := client.StartTrace(context.Background(),
		"create_order", http.MethodPost, "/api/orders", "1")
	assert.Contains(t, traceID, "trace_")

	client.LogEvent(ctx, "Validating user: 1", "INFO")
	client.RecordServiceCall(ctx, "user-service", "validate_user",
		http.MethodGet, "http://localhost:8081/api/users/1", 12*time.Millisecond, http.StatusOK)
	client.FinishTrace(ctx, "create_order", http.StatusOK, "")

	events := sink.all()
	require.Len(t, events, 4)

	start := events[0]
	assert.Equal(t, "SPAN", start.EventType)
	assert.Equal(t, "create_order", start.Operation)
	assert.Equal(t, "order-service", start.ServiceName)
	assert.Equal(t, traceID, start.TraceID)
	assert.Equal(t, "1", start.UserID)

	log := events[1]
	assert.Equal(t, "LOG", log.EventType)
	assert.Equal(t, "log_event", log.Operation)
	assert.Equal(t, traceID, log.TraceID)
	assert.Equal(t, start.SpanID, log.SpanID)
	assert.Equal(t, "INFO", log.LogLevel)

	call := events[2]
	assert.Equal(t, "user-service_validate_user", call.Operation)
	assert.Equal(t, traceID, call.TraceID)
	assert.Equal(t, start.SpanID, call.ParentSpanID)
	assert.NotEqual(t, start.SpanID, call.SpanID)
	assert.Equal(t, "SUCCESS", call.Status)
	assert.Equal(t, "Outbound call to user-service", call.Metadata)

	finish := events[3]
	assert.Equal(t, "create_order_complete", finish.Operation)
	assert.Equal(t, traceID, finish.TraceID)
	assert.Equal(t, start.SpanID, finish.SpanID)
	assert.Equal(t, "SUCCESS", finish.Status)
	assert.Equal(t, http.StatusOK, finish.HTTPStatusCode)
}

func TestClient_FinishClearsTrace(t *testing.T) {
	sink := &eventSink{}
	server := httptest.NewServer(sink.handler(t))
	defer server.Close()

	client := newTestClient(t, server.URL)

	ctx, _ := client.StartTrace(context.Background(),
		"cancel_order", http.MethodDelete, "/api/orders/5", "1")
	client.FinishTrace(ctx, "cancel_order", http.StatusNoContent, "")

	// A second finish on the same context is a no-op.
	client.FinishTrace(ctx, "cancel_order", http.StatusNoContent, "")
	// Log events after the finish carry no trace correlation.
	client.LogEvent(ctx, "late message", "INFO")

	events := sink.all()
	require.Len(t, events, 3)
	assert.Empty(t, events[2].TraceID)
	assert.Empty(t, events[2].SpanID)
}

func TestClient_NoActiveTrace(t *testing.T) {
	sink := &eventSink{}
	server := httptest.NewServer(sink.handler(t))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// Finish without a start must not emit or panic.
	client.FinishTrace(context.Background(), "create_order", http.StatusOK, "")
	assert.Empty(t, sink.all())

	// Child spans and logs still emit, uncorrelated.
	client.RecordServiceCall(context.Background(), "product-service", "get_product",
		http.MethodGet, "http://localhost:8082/api/products/10", time.Millisecond, http.StatusOK)
	client.LogEvent(context.Background(), "orphan message", "WARN")

	events := sink.all()
	require.Len(t, events, 2)
	assert.Empty(t, events[0].TraceID)
	assert.Empty(t, events[0].ParentSpanID)
	assert.Empty(t, events[1].TraceID)
}

func TestClient_ErrorTrace(t *testing.T) {
	sink := &eventSink{}
	server := httptest.NewServer(sink.handler(t))
	defer server.Close()

	client := newTestClient(t, server.URL)

	ctx, _ := client.StartTrace(context.Background(),
		"create_order", http.MethodPost, "/api/orders", "99")
	client.RecordServiceCall(ctx, "product-service", "get_product",
		http.MethodGet, "http://localhost:8082/api/products/500", time.Millisecond, http.StatusInternalServerError)
	client.FinishTrace(ctx, "create_order", http.StatusInternalServerError, "product resolution failed")

	events := sink.all()
	require.Len(t, events, 3)
	assert.Equal(t, "ERROR", events[1].Status)
	assert.Equal(t, "ERROR", events[2].Status)
	assert.Equal(t, "product resolution failed", events[2].ErrorMessage)
}

func TestClient_ConcurrentTraceIsolation(t *testing.T) {
	sink := &eventSink{}
	server := httptest.NewServer(sink.handler(t))
	defer server.Close()

	client := newTestClient(t, server.URL)

	var wg sync.WaitGroup
	traceIDs := make([]string, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx, traceID := client.StartTrace(context.Background(),
				"create_order", http.MethodPost, "/api/orders", "1")
			traceIDs[i] = traceID
			client.LogEvent(ctx, "working", "INFO")
			client.FinishTrace(ctx, "create_order", http.StatusOK, "")
		}(i)
	}
	wg.Wait()

	assert.NotEqual(t, traceIDs[0], traceIDs[1])

	// Every emitted event must belong to exactly one of the two traces.
	perTrace := map[string]int{}
	for _, event := range sink.all() {
		perTrace[event.TraceID]++
	}
	assert.Equal(t, 3, perTrace[traceIDs[0]])
	assert.Equal(t, 3, perTrace[traceIDs[1]])
}

func TestClient_BackendFailureSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	ctx, traceID := client.StartTrace(context.Background(),
		"create_order", http.MethodPost, "/api/orders", "1")
	assert.NotEmpty(t, traceID)
	client.FinishTrace(ctx, "create_order", http.StatusOK, "")

	// An unreachable backend is equally harmless.
	server.Close()
	dead := newTestClient(t, server.URL)
	ctx, traceID = dead.StartTrace(context.Background(),
		"create_order", http.MethodPost, "/api/orders", "1")
	assert.NotEmpty(t, traceID)
	dead.LogEvent(ctx, "still fine", "INFO")
	dead.FinishTrace(ctx, "create_order", http.StatusOK, "")
}

package port

import (
	"context"
	"time"
)

//go:generate mockgen -source=telemetry.go -destination=mock/telemetry.go -package=mock

// Telemetry records trace spans and log events for one request flow. The
// trace context travels on the context.Context returned by StartTrace so it is
// visible to every downstream call of that request and to no other request.
// Emission is best-effort: implementations never return errors and never panic.
type Telemetry interface {
	// StartTrace binds a fresh trace to the returned context and reports the
	// generated trace id.
	StartTrace(ctx context.Context, operation, httpMethod, httpURL, userID string) (context.Context, string)
	// FinishTrace emits the completion span and clears the bound trace.
	// A no-op when ctx carries no trace.
	FinishTrace(ctx context.Context, operation string, httpStatusCode int, errMessage string)
	// RecordServiceCall emits a child span for one outbound call, correlated
	// with the currently bound trace if any. Read-only on the trace context.
	RecordServiceCall(ctx context.Context, serviceName, operation, httpMethod, httpURL string, duration time.Duration, statusCode int)
	// LogEvent emits a freeform log record tagged with the bound trace id if any.
	LogEvent(ctx context.Context, message, level string)
}

package tracing

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/rise-and-shine/filescom/meta"
)

// localTraceIDPrefix marks ids generated without an active span.
const localTraceIDPrefix = "local-"

// TraceIDFor returns the id used to correlate logs of an operation.
// A meta.TraceID already carried by ctx wins, then the id of the active span.
// Without either a random id prefixed with "local-" is returned.
func TraceIDFor(ctx context.Context) string {
	if id := meta.Find(ctx, meta.TraceID); id != "" {
		return id
	}

	if sc := trace.SpanContextFromContext(ctx); sc.TraceID().IsValid() {
		return sc.TraceID().String()
	}

	return localTraceIDPrefix + uuid.NewString()
}

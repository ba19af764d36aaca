package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID returns a child context carrying the request id used in timing lines.
func WithRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, reqID)
}

// RequestID returns the request id stored in ctx, or "-" when none was set.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok && reqID != "" {
		return reqID
	}
	return "-"
}

// Time logs how long the named upstream operation took once the returned
// func is called. Pass a pointer to the caller's named error result so
// failures are logged alongside the duration.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("level=error req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("level=info req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}

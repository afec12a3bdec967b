package shared

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// ClerkUserIDKey is the key for the authenticated Clerk user ID
	ClerkUserIDKey ContextKey = "clerkUserID"

	// TraceIDHeader carries the trace ID back to the client
	TraceIDHeader = "X-Trace-ID"
)

// SetTraceID adds a new trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, newTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SetClerkUserID stores the authenticated Clerk user ID.
func SetClerkUserID(ctx context.Context, clerkUserID string) context.Context {
	return context.WithValue(ctx, ClerkUserIDKey, clerkUserID)
}

// GetClerkUserID returns the authenticated Clerk user ID, if any.
func GetClerkUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ClerkUserIDKey).(string)
	return id, ok && id != ""
}

// newTraceID returns 32 hex characters.
func newTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

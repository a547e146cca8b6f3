package shared

import "context"

// ContextKey is the type for context values set by the API layer.
type ContextKey string

const (
	// TraceIDKey is the key for the request trace ID.
	TraceIDKey ContextKey = "traceID"

	// AccessTokenKey is the key for the caller's Google OAuth bearer
	// credential, extracted by the access-token middleware for the flows
	// that drive Google APIs.
	AccessTokenKey ContextKey = "accessToken"
)

// SetTraceID stores a trace ID in the context.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context, or "" if absent.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SetAccessToken stores the caller's bearer credential in the context.
func SetAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, AccessTokenKey, token)
}

// GetAccessToken retrieves the bearer credential, or "" if absent.
func GetAccessToken(ctx context.Context) string {
	token, ok := ctx.Value(AccessTokenKey).(string)
	if !ok {
		return ""
	}
	return token
}

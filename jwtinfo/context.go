package jwtinfo

import "context"

// contextKey is an unexported type for context keys to prevent collisions
type contextKey string

const (
	tokenContextKey     contextKey = "github.com/Wang-tianhao/jwtinfo-go/jwtinfo:token"
	requestIDContextKey contextKey = "github.com/Wang-tianhao/jwtinfo-go/jwtinfo:request_id"
)

// WithToken stores a decoded token in the context
func WithToken(ctx context.Context, token *Token) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// GetToken retrieves the decoded token stored by the inspection adapters.
// Returns nil, false if the request carried no decodable token.
// The token is unverified: do not base authorization decisions on it.
func GetToken(ctx context.Context) (*Token, bool) {
	token, ok := ctx.Value(tokenContextKey).(*Token)
	return token, ok && token != nil
}

// WithRequestID stores a request ID in context for correlation
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey).(string)
	return id, ok
}

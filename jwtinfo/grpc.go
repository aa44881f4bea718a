package jwtinfo

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// UnaryServerInterceptor returns a gRPC unary server interceptor that decodes
// the bearer token from incoming metadata and stores it in the context for
// GetToken. Like Inspect, it never rejects a call.
func UnaryServerInterceptor(cfg *Config) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		md, ok := metadata.FromIncomingContext(ctx)

		// Reuse the caller's correlation ID when it sent one
		requestID := ""
		if ok {
			if ids := md.Get("x-request-id"); len(ids) > 0 && ids[0] != "" {
				requestID = ids[0]
			}
		}
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx = WithRequestID(ctx, requestID)

		if ok {
			if raw, err := extractTokenFromMetadata(md); err == nil {
				if token, err := Decode(ctx, cfg, "grpc", raw); err == nil {
					ctx = WithToken(ctx, token)
				}
			}
		}

		return handler(ctx, req)
	}
}

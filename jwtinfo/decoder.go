package jwtinfo

import (
	"context"
	"fmt"
	"time"
)

// Decode parses raw with the size limit of cfg and emits a decode event to
// the configured logger. source labels the event ("cli", "http", "grpc");
// the request ID is taken from ctx when present.
func Decode(ctx context.Context, cfg *Config, source, raw string) (*Token, error) {
	startTime := time.Now()
	requestID, _ := GetRequestID(ctx)

	var (
		token *Token
		err   error
	)
	if limit := cfg.MaxTokenSize(); limit > 0 && len(raw) > limit {
		err = NewError(ErrTokenTooLarge, fmt.Sprintf("token too large: %d bytes exceeds limit of %d", len(raw), limit), nil)
	} else {
		token, err = Parse(raw)
	}

	logDecodeEvent(cfg.Logger(), newDecodeEvent(source, requestID, raw, token, err, time.Since(startTime)))

	if err != nil {
		return nil, err
	}
	return token, nil
}

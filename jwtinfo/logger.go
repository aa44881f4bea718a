package jwtinfo

import (
	"log/slog"
	"time"
)

// DecodeEvent represents a structured log entry for one decode attempt
type DecodeEvent struct {
	EventType     string        // "success" or "failure"
	Timestamp     time.Time     // Event timestamp
	Source        string        // "cli", "http" or "grpc"
	RequestID     string        // Correlation ID (empty for the CLI)
	Subject       string        // sub claim (empty on failure)
	Algorithm     string        // alg header (empty on failure)
	FailureReason string        // Error code (on failure)
	TokenPreview  string        // Redacted token preview
	Latency       time.Duration // Decode latency
}

// LogValue implements slog.LogValuer for structured logging with redaction
func (e DecodeEvent) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("event", e.EventType),
		slog.Time("timestamp", e.Timestamp),
		slog.String("source", e.Source),
		slog.String("request_id", e.RequestID),
		slog.String("subject", e.Subject),
		slog.String("algorithm", e.Algorithm),
		slog.String("failure_reason", e.FailureReason),
		slog.String("token", redactToken(e.TokenPreview)),
		slog.Duration("latency", e.Latency),
	)
}

// redactToken keeps only the first 8 characters of a token
func redactToken(token string) string {
	if len(token) == 0 {
		return ""
	}
	if len(token) <= 8 {
		return "***"
	}
	return token[:8] + "..."
}

// newDecodeEvent builds the event for the outcome of a decode
func newDecodeEvent(source, requestID, raw string, token *Token, err error, latency time.Duration) DecodeEvent {
	event := DecodeEvent{
		EventType:    "success",
		Timestamp:    time.Now(),
		Source:       source,
		RequestID:    requestID,
		TokenPreview: raw,
		Latency:      latency,
	}

	if err != nil {
		event.EventType = "failure"
		event.FailureReason = getErrorCode(err)
		return event
	}

	event.Algorithm = token.Algorithm()
	if claims, ok := token.Claims(); ok {
		event.Subject = claims.Subject
	}
	return event
}

// logDecodeEvent emits a decode event via the configured logger
func logDecodeEvent(logger *slog.Logger, event DecodeEvent) {
	if logger == nil {
		return // Logging disabled
	}

	if event.EventType == "failure" {
		logger.Warn("token decode failed", "decode_event", event)
	} else {
		logger.Info("token decoded", "decode_event", event)
	}
}

package jwtinfo

import (
	"net/http"
	"strings"

	"google.golang.org/grpc/metadata"
)

// TrimBearer strips surrounding whitespace and a case-insensitive "Bearer "
// scheme from value. Anything else is returned trimmed but unchanged.
func TrimBearer(value string) string {
	value = strings.TrimSpace(value)
	scheme, rest, found := strings.Cut(value, " ")
	if found && strings.EqualFold(scheme, "bearer") {
		return strings.TrimSpace(rest)
	}
	return value
}

// ExtractBearer extracts a token from an Authorization-style value.
// Accepts "Bearer <token>" or a bare token; other schemes are rejected.
func ExtractBearer(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", NewError(ErrMissingToken, "authorization value is empty", nil)
	}

	if strings.Contains(value, " ") {
		scheme, _, _ := strings.Cut(value, " ")
		if !strings.EqualFold(scheme, "bearer") {
			return "", NewError(ErrMalformed, "invalid authorization format, expected 'Bearer <token>'", nil)
		}
	}

	token := TrimBearer(value)
	if token == "" || strings.EqualFold(token, "bearer") {
		return "", NewError(ErrMissingToken, "token is empty", nil)
	}

	return token, nil
}

// extractTokenFromHeader extracts a token from the Authorization header
func extractTokenFromHeader(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", NewError(ErrMissingToken, "authorization header not found", nil)
	}
	return ExtractBearer(authHeader)
}

// extractTokenFromCookie extracts a token from a cookie
func extractTokenFromCookie(r *http.Request, cookieName string) (string, error) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return "", NewError(ErrMissingToken, "cookie not found", err)
	}

	token := strings.TrimSpace(cookie.Value)
	if token == "" {
		return "", NewError(ErrMissingToken, "cookie value is empty", nil)
	}

	return token, nil
}

// extractToken extracts a token from an HTTP request.
// Checks the Authorization header first, then falls back to the cookie if configured.
func extractToken(r *http.Request, cfg *Config) (string, error) {
	token, err := extractTokenFromHeader(r)
	if err == nil {
		return token, nil
	}

	if cfg.CookieName() != "" {
		token, cookieErr := extractTokenFromCookie(r, cfg.CookieName())
		if cookieErr == nil {
			return token, nil
		}
	}

	// Return the original header error
	return "", err
}

// extractTokenFromMetadata extracts a token from gRPC metadata
func extractTokenFromMetadata(md metadata.MD) (string, error) {
	values := md.Get("authorization")
	if len(values) == 0 {
		return "", NewError(ErrMissingToken, "authorization metadata not found", nil)
	}
	return ExtractBearer(values[0])
}

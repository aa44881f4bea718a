package jwtinfo

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Inspect returns a Gin middleware that decodes the request token, if any,
// and stores it in the request context for GetToken. It never verifies the
// token and never aborts the request: undecodable tokens are only logged.
func Inspect(cfg *Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := requestIDFromGin(c)
		ctx := WithRequestID(c.Request.Context(), requestID)

		// Requests without a token pass through untouched
		raw, err := extractToken(c.Request, cfg)
		if err == nil {
			if token, err := Decode(ctx, cfg, "http", raw); err == nil {
				ctx = WithToken(ctx, token)
			}
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// decodeRequest is the JSON body accepted by DecodeHandler
type decodeRequest struct {
	Token string `json:"token"`
}

// DecodeHandler returns a Gin handler that decodes a token and responds with
// {"header": ..., "claims": ...}. The token is read from a JSON body
// {"token": "..."}, then the "token" query parameter, then the request's
// Authorization header or cookie. Failures respond 400 with the description
// and error code.
func DecodeHandler(cfg *Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := requestIDFromGin(c)
		ctx := WithRequestID(c.Request.Context(), requestID)
		c.Header("X-Request-ID", requestID)

		raw, err := tokenFromDecodeRequest(c, cfg)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, buildErrorResponse(err))
			return
		}

		token, err := Decode(ctx, cfg, "http", raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, buildErrorResponse(err))
			return
		}

		out, err := token.Render(PartFull, cfg.Pretty())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to render token"})
			return
		}

		c.Data(http.StatusOK, "application/json; charset=utf-8", out)
	}
}

// tokenFromDecodeRequest locates the token for DecodeHandler
func tokenFromDecodeRequest(c *gin.Context, cfg *Config) (string, error) {
	if c.Request.ContentLength != 0 && c.ContentType() == "application/json" {
		var req decodeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return "", NewError(ErrMalformed, "invalid JSON request body", err)
		}
		if req.Token != "" {
			return ExtractBearer(req.Token)
		}
	}

	if q := c.Query("token"); q != "" {
		return ExtractBearer(q)
	}

	raw, err := extractToken(c.Request, cfg)
	if err != nil {
		var reqErr *Error
		if errors.As(err, &reqErr) && reqErr.Code == ErrMissingToken {
			return "", NewError(ErrMissingToken, "no token in request body, query or headers", err)
		}
		return "", err
	}
	return raw, nil
}

// requestIDFromGin returns the caller's X-Request-ID or a fresh UUID
func requestIDFromGin(c *gin.Context) string {
	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}
	return uuid.New().String()
}

// buildErrorResponse constructs the 400 response body
func buildErrorResponse(err error) gin.H {
	return gin.H{
		"error":  describeError(err),
		"reason": getErrorCode(err),
	}
}

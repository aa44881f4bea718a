package jwtinfo

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// registeredClaims are the claim names summarized into Claims fields
var registeredClaims = map[string]bool{
	"sub": true, "iss": true, "aud": true, "exp": true,
	"nbf": true, "iat": true, "jti": true,
}

// Claims summarizes the registered claims of an object-shaped body. It is
// informational only: nothing here is checked against the current time or
// any expected issuer or audience.
type Claims struct {
	Subject   string         // sub claim
	Issuer    string         // iss claim
	Audience  []string       // aud claim, a single string becomes one element
	ExpiresAt time.Time      // exp claim
	NotBefore time.Time      // nbf claim
	IssuedAt  time.Time      // iat claim
	JWTID     string         // jti claim
	Custom    map[string]any // every other claim
}

// Claims extracts a Claims summary from the token body. It returns false when
// the body is not a JSON object. Registered claims of the wrong type are left
// at their zero value.
func (t *Token) Claims() (*Claims, bool) {
	obj, ok := t.body.(map[string]any)
	if !ok {
		return nil, false
	}
	mapClaims := jwt.MapClaims(obj)

	claims := &Claims{
		Custom: make(map[string]any),
	}

	if sub, err := mapClaims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if iss, err := mapClaims.GetIssuer(); err == nil {
		claims.Issuer = iss
	}
	if aud, err := mapClaims.GetAudience(); err == nil && len(aud) > 0 {
		claims.Audience = []string(aud)
	}
	if jti, ok := mapClaims["jti"].(string); ok {
		claims.JWTID = jti
	}

	// Time claims may be integers or fractional seconds
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	if nbf, err := mapClaims.GetNotBefore(); err == nil && nbf != nil {
		claims.NotBefore = nbf.Time
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}

	for key, value := range obj {
		if !registeredClaims[key] {
			claims.Custom[key] = value
		}
	}

	return claims, true
}

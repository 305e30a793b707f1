package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// EmployeeIDClaim is the claim key under which the authenticated employee's
// ID is embedded in every admin token.
const EmployeeIDClaim = "empId"

// MinTokenTTL is the shortest lifetime [TokenCodec.Issue] accepts. "exp" has
// whole-second precision.
const MinTokenTTL = time.Second

// Reserved time claims managed by the codec. Values supplied by callers under
// these keys are overwritten on issue and stripped on verify.
const (
	issuedAtClaim  = "iat"
	expiresAtClaim = "exp"
)

// Token verification errors. Callers can match against them with [errors.Is].
var (
	// ErrTokenInvalid covers malformed tokens, unexpected signing methods and
	// signature mismatches.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenExpired is returned for correctly signed tokens whose "exp"
	// claim lies in the past.
	ErrTokenExpired = errors.New("token is expired")

	errInvalidTokenParams = errors.New("invalid params for generating JWT token")
)

// Claims is the set of key-value pairs embedded in a token payload.
//
// After [TokenCodec.Verify] numeric values are [json.Number]; use
// [Claims.Int64] to read integer claims such as [EmployeeIDClaim].
type Claims map[string]any

// Int64 returns the claim under key as an int64.
//
// It accepts the integer kinds a caller may have put into the map before
// issuing as well as the json.Number and float64 forms a decoder produces.
func (c Claims) Int64(key string) (int64, error) {
	raw, ok := c[key]
	if !ok {
		return 0, fmt.Errorf("claim %q is missing", key)
	}

	switch v := raw.(type) {
	case json.Number:
		return v.Int64()
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("claim %q is not an integer", key)
		}
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("claim %q has unsupported type %T", key, raw)
	}
}

// TokenCodec issues and verifies HMAC-SHA256 signed, expiring tokens in the
// compact JWS form header.payload.signature.
//
// A TokenCodec holds no secrets and no state besides its clock, so a single
// value can be shared by all request goroutines.
type TokenCodec struct {
	now func() time.Time
}

// TokenCodecOption configures a [TokenCodec].
type TokenCodecOption func(*TokenCodec)

// WithClock replaces the wall clock used for "iat", "exp" and expiry checks.
func WithClock(now func() time.Time) TokenCodecOption {
	return func(c *TokenCodec) {
		c.now = now
	}
}

// NewTokenCodec returns a codec using time.Now unless overridden.
func NewTokenCodec(opts ...TokenCodecOption) *TokenCodec {
	c := &TokenCodec{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Issue signs claims with secret and returns the compact token string.
//
// The payload carries every entry of claims plus "iat" (now) and "exp"
// (now + ttl, rounded up to the next whole second) as Unix seconds, so the
// token is accepted at every instant before now + ttl. ttl must be at least
// [MinTokenTTL]. The output is deterministic for identical
// inputs and clock readings since JSON object keys are emitted sorted.
//
// Example usage:
//
//	token, err := codec.Issue(secret, 2*time.Hour, utils.Claims{utils.EmployeeIDClaim: int64(1)})
func (c *TokenCodec) Issue(secret string, ttl time.Duration, claims Claims) (string, error) {
	if secret == "" || ttl < MinTokenTTL {
		return "", errInvalidTokenParams
	}

	now := c.now()
	payload := make(jwt.MapClaims, len(claims)+2)
	for k, v := range claims {
		payload[k] = v
	}
	payload[issuedAtClaim] = now.Unix()
	payload[expiresAtClaim] = expiresAt(now, ttl)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}

// Verify checks the token's signature against secret and then its expiry.
//
// It returns [ErrTokenInvalid] when the token is malformed, signed with an
// algorithm other than HS256 or carries a wrong signature, and
// [ErrTokenExpired] when the signature is valid and now has reached "exp".
// A missing "exp" is treated as invalid.
//
// On success the embedded claims are returned without "iat" and "exp".
func (c *TokenCodec) Verify(secret, tokenString string) (Claims, error) {
	if secret == "" {
		return nil, ErrTokenInvalid
	}

	token, err := jwt.ParseWithClaims(tokenString, jwt.MapClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
		jwt.WithJSONNumber(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	parsed, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	claims := make(Claims, len(parsed))
	for k, v := range parsed {
		if k == issuedAtClaim || k == expiresAtClaim {
			continue
		}
		claims[k] = v
	}

	return claims, nil
}

// expiresAt returns now + ttl in Unix seconds, rounded up.
func expiresAt(now time.Time, ttl time.Duration) int64 {
	exp := now.Add(ttl)
	if exp.Nanosecond() > 0 {
		return exp.Unix() + 1
	}
	return exp.Unix()
}

// EmployeeID reads [EmployeeIDClaim] from verified claims.
func EmployeeID(claims Claims) (int64, error) {
	id, err := claims.Int64(EmployeeIDClaim)
	if err != nil {
		return 0, fmt.Errorf("error occurred during getting employee ID from token: %w", err)
	}
	return id, nil
}

package utils

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const testSecret = "itcast-admin-secret"

var issuedAt = time.Unix(1_700_000_000, 0)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// alterSignature replaces the first character of the signature segment.
func alterSignature(token string) string {
	sigStart := strings.LastIndex(token, ".") + 1
	replacement := byte('A')
	if token[sigStart] == 'A' {
		replacement = 'B'
	}
	return token[:sigStart] + string(replacement) + token[sigStart+1:]
}

func TestTokenCodec_IssueAndVerify(t *testing.T) {
	codec := NewTokenCodec(WithClock(fixedClock(issuedAt)))

	token, err := codec.Issue(testSecret, time.Hour, Claims{EmployeeIDClaim: int64(7), "name": "admin"})
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3, "token must have header, payload and signature")

	claims, err := codec.Verify(testSecret, token)
	require.NoError(t, err)

	id, err := EmployeeID(claims)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, "admin", claims["name"])
	assert.NotContains(t, claims, "iat")
	assert.NotContains(t, claims, "exp")
}

func TestTokenCodec_PayloadCarriesUnixTimes(t *testing.T) {
	codec := NewTokenCodec(WithClock(fixedClock(issuedAt)))

	token, err := codec.Issue(testSecret, 2*time.Hour, Claims{EmployeeIDClaim: int64(1)})
	require.NoError(t, err)

	payload, err := base64.RawURLEncoding.DecodeString(strings.Split(token, ".")[1])
	require.NoError(t, err)

	var body map[string]json.Number
	dec := json.NewDecoder(strings.NewReader(string(payload)))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&body))

	assert.Equal(t, json.Number("1700000000"), body["iat"])
	assert.Equal(t, json.Number("1700007200"), body["exp"])
	assert.Equal(t, json.Number("1"), body[EmployeeIDClaim])
}

func TestTokenCodec_ExpiryRoundsUpFromFractionalIssueTime(t *testing.T) {
	at := time.Unix(1_700_000_000, int64(900*time.Millisecond))
	token, err := NewTokenCodec(WithClock(fixedClock(at))).Issue(testSecret, time.Hour, Claims{EmployeeIDClaim: int64(1)})
	require.NoError(t, err)

	payload, err := base64.RawURLEncoding.DecodeString(strings.Split(token, ".")[1])
	require.NoError(t, err)
	var body map[string]json.Number
	dec := json.NewDecoder(strings.NewReader(string(payload)))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&body))
	assert.Equal(t, json.Number("1700000000"), body["iat"])
	assert.Equal(t, json.Number("1700003601"), body["exp"])

	tests := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{name: "at issue", at: at},
		{name: "half a second before ttl elapses", at: at.Add(time.Hour - 500*time.Millisecond)},
		{name: "one nanosecond before ttl elapses", at: at.Add(time.Hour - time.Nanosecond)},
		{name: "at rounded exp", at: time.Unix(1_700_003_601, 0), wantErr: ErrTokenExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenCodec(WithClock(fixedClock(tt.at))).Verify(testSecret, token)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTokenCodec_MinimumTTLIsValidAtIssue(t *testing.T) {
	at := time.Unix(1_700_000_000, int64(999*time.Millisecond))
	codec := NewTokenCodec(WithClock(fixedClock(at)))

	token, err := codec.Issue(testSecret, MinTokenTTL, Claims{EmployeeIDClaim: int64(1)})
	require.NoError(t, err)

	_, err = codec.Verify(testSecret, token)
	assert.NoError(t, err)
}

func TestTokenCodec_IssueIsDeterministic(t *testing.T) {
	codec := NewTokenCodec(WithClock(fixedClock(issuedAt)))
	claims := Claims{EmployeeIDClaim: int64(3), "b": "x", "a": "y"}

	first, err := codec.Issue(testSecret, time.Minute, claims)
	require.NoError(t, err)
	second, err := codec.Issue(testSecret, time.Minute, claims)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTokenCodec_IssueInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		ttl    time.Duration
	}{
		{"empty secret", "", time.Hour},
		{"zero ttl", testSecret, 0},
		{"negative ttl", testSecret, -time.Second},
		{"sub-second ttl", testSecret, 500 * time.Millisecond},
		{"just under a second", testSecret, time.Second - time.Nanosecond},
	}

	codec := NewTokenCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := codec.Issue(tt.secret, tt.ttl, Claims{EmployeeIDClaim: int64(1)})
			assert.Error(t, err)
			assert.Empty(t, token)
		})
	}
}

func TestTokenCodec_Verify_TableTest(t *testing.T) {
	issuer := NewTokenCodec(WithClock(fixedClock(issuedAt)))
	valid, err := issuer.Issue(testSecret, time.Hour, Claims{EmployeeIDClaim: int64(9)})
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		EmployeeIDClaim: 9,
		"exp":           issuedAt.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512Token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		EmployeeIDClaim: 9,
		"exp":           issuedAt.Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		EmployeeIDClaim: 9,
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name    string
		secret  string
		token   string
		at      time.Time
		wantErr error
	}{
		{name: "valid one second after issue", secret: testSecret, token: valid, at: issuedAt.Add(time.Second)},
		{name: "valid just before expiry", secret: testSecret, token: valid, at: issuedAt.Add(time.Hour - time.Second)},
		{name: "expired", secret: testSecret, token: valid, at: issuedAt.Add(time.Hour + time.Second), wantErr: ErrTokenExpired},
		{name: "wrong secret", secret: "other-secret", token: valid, at: issuedAt, wantErr: ErrTokenInvalid},
		{name: "empty secret", secret: "", token: valid, at: issuedAt, wantErr: ErrTokenInvalid},
		{name: "altered signature", secret: testSecret, token: alterSignature(valid), at: issuedAt, wantErr: ErrTokenInvalid},
		{name: "altered signature on expired token", secret: testSecret, token: alterSignature(valid), at: issuedAt.Add(2 * time.Hour), wantErr: ErrTokenInvalid},
		{name: "empty token", secret: testSecret, token: "", at: issuedAt, wantErr: ErrTokenInvalid},
		{name: "two segments", secret: testSecret, token: "abc.def", at: issuedAt, wantErr: ErrTokenInvalid},
		{name: "garbage segments", secret: testSecret, token: "!!.??.**", at: issuedAt, wantErr: ErrTokenInvalid},
		{name: "alg none", secret: testSecret, token: noneToken, at: issuedAt, wantErr: ErrTokenInvalid},
		{name: "unexpected HMAC variant", secret: testSecret, token: hs512Token, at: issuedAt, wantErr: ErrTokenInvalid},
		{name: "missing exp", secret: testSecret, token: noExpToken, at: issuedAt, wantErr: ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := NewTokenCodec(WithClock(fixedClock(tt.at)))
			claims, err := verifier.Verify(tt.secret, tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			id, err := EmployeeID(claims)
			require.NoError(t, err)
			assert.Equal(t, int64(9), id)
		})
	}
}

func TestTokenCodec_ReservedClaimsAreOverwritten(t *testing.T) {
	codec := NewTokenCodec(WithClock(fixedClock(issuedAt)))

	token, err := codec.Issue(testSecret, time.Hour, Claims{EmployeeIDClaim: int64(1), "exp": int64(0)})
	require.NoError(t, err)

	_, err = codec.Verify(testSecret, token)
	assert.NoError(t, err, "caller supplied exp must not shorten the token lifetime")
}

func TestClaims_Int64_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		claims  Claims
		want    int64
		wantErr bool
	}{
		{name: "json number", claims: Claims{"k": json.Number("42")}, want: 42},
		{name: "int64", claims: Claims{"k": int64(42)}, want: 42},
		{name: "int", claims: Claims{"k": 42}, want: 42},
		{name: "whole float", claims: Claims{"k": float64(42)}, want: 42},
		{name: "numeric string", claims: Claims{"k": "42"}, want: 42},
		{name: "fractional float", claims: Claims{"k": 4.2}, wantErr: true},
		{name: "missing", claims: Claims{}, wantErr: true},
		{name: "bool", claims: Claims{"k": true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.claims.Int64("k")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func drawClaims(t *rapid.T) (int64, map[string]string) {
	id := rapid.Int64().Draw(t, "empId")
	extra := rapid.MapOf(
		rapid.StringMatching(`[a-z]{1,8}`).Filter(func(k string) bool {
			return k != "iat" && k != "exp" && k != EmployeeIDClaim
		}),
		rapid.StringMatching(`[a-zA-Z0-9 _-]{0,16}`),
	).Draw(t, "claims")
	return id, extra
}

func buildClaims(id int64, extra map[string]string) Claims {
	claims := Claims{EmployeeIDClaim: id}
	for k, v := range extra {
		claims[k] = v
	}
	return claims
}

func TestTokenCodec_RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		secret := rapid.StringMatching(`[a-zA-Z0-9]{1,48}`).Draw(t, "secret")
		at := issuedAt.Add(time.Duration(rapid.Int64Range(0, int64(time.Second)-1).Draw(t, "issueNanos")))
		ttl := time.Duration(rapid.Int64Range(int64(MinTokenTTL), int64(24*time.Hour)).Draw(t, "ttl"))
		elapsed := time.Duration(rapid.Int64Range(0, int64(ttl)-1).Draw(t, "elapsed"))
		id, extra := drawClaims(t)

		token, err := NewTokenCodec(WithClock(fixedClock(at))).Issue(secret, ttl, buildClaims(id, extra))
		if err != nil {
			t.Fatalf("issue: %v", err)
		}

		claims, err := NewTokenCodec(WithClock(fixedClock(at.Add(elapsed)))).Verify(secret, token)
		if err != nil {
			t.Fatalf("verify before expiry: %v", err)
		}

		gotID, err := EmployeeID(claims)
		if err != nil || gotID != id {
			t.Fatalf("expected employee id %d, got %d (%v)", id, gotID, err)
		}
		if len(claims) != len(extra)+1 {
			t.Fatalf("expected %d claims, got %d", len(extra)+1, len(claims))
		}
		for k, v := range extra {
			if claims[k] != v {
				t.Fatalf("claim %q: expected %q, got %v", k, v, claims[k])
			}
		}
	})
}

func TestTokenCodec_ExpiredProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ttl := time.Duration(rapid.Int64Range(1, 86_400).Draw(t, "ttlSeconds")) * time.Second
		late := time.Duration(rapid.Int64Range(1, 1_000_000).Draw(t, "lateSeconds")) * time.Second
		at := issuedAt.Add(time.Duration(rapid.Int64Range(0, int64(time.Second)-1).Draw(t, "issueNanos")))
		id, extra := drawClaims(t)

		token, err := NewTokenCodec(WithClock(fixedClock(at))).Issue(testSecret, ttl, buildClaims(id, extra))
		if err != nil {
			t.Fatalf("issue: %v", err)
		}

		_, err = NewTokenCodec(WithClock(fixedClock(at.Add(ttl + late)))).Verify(testSecret, token)
		if !errors.Is(err, ErrTokenExpired) {
			t.Fatalf("expected expired token error, got %v", err)
		}
	})
}

func TestTokenCodec_AlteredSignatureProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		id, extra := drawClaims(t)
		codec := NewTokenCodec(WithClock(fixedClock(issuedAt)))

		token, err := codec.Issue(testSecret, time.Hour, buildClaims(id, extra))
		if err != nil {
			t.Fatalf("issue: %v", err)
		}

		_, err = codec.Verify(testSecret, alterSignature(token))
		if !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected invalid token error, got %v", err)
		}
	})
}

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-16-chars!!"

func newTestVerifier(t *testing.T, issuer string) *HMACVerifier {
	t.Helper()

	v, err := NewHMACVerifier(testSecret, issuer)
	require.NoError(t, err)
	return v
}

func TestNewHMACVerifier_ShortSecret(t *testing.T) {
	_, err := NewHMACVerifier("short", "")
	assert.Error(t, err)
}

func TestVerifyToken_RoundTrip(t *testing.T) {
	v := newTestVerifier(t, "orchids")

	token, err := v.Generate("user_123", time.Minute)
	require.NoError(t, err)

	userID, err := v.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user_123", userID)
}

func TestVerifyToken_Rejects(t *testing.T) {
	v := newTestVerifier(t, "orchids")

	expired, err := v.Generate("user_123", -time.Minute)
	require.NoError(t, err)

	otherSecret, err := NewHMACVerifier("a-completely-different-secret", "orchids")
	require.NoError(t, err)
	forged, err := otherSecret.Generate("user_123", time.Minute)
	require.NoError(t, err)

	otherIssuer, err := NewHMACVerifier(testSecret, "someone-else")
	require.NoError(t, err)
	wrongIssuer, err := otherIssuer.Generate("user_123", time.Minute)
	require.NoError(t, err)

	noSubject, err := v.Generate("", time.Minute)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "user_123",
		Issuer:  "orchids",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "user_123",
		Issuer:    "orchids",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.jwt"},
		{name: "expired", token: expired},
		{name: "wrong secret", token: forged},
		{name: "wrong issuer", token: wrongIssuer},
		{name: "missing subject", token: noSubject},
		{name: "missing expiry", token: noExpiry},
		{name: "wrong algorithm", token: wrongAlg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.VerifyToken(tt.token)
			assert.ErrorIs(t, err, ErrUnauthorized)
		})
	}
}

func TestVerifyToken_NoIssuerConfigured(t *testing.T) {
	v := newTestVerifier(t, "")
	issuing := newTestVerifier(t, "anyone")

	token, err := issuing.Generate("user_123", time.Minute)
	require.NoError(t, err)

	userID, err := v.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user_123", userID)
}

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
)

const testSecret = "a-test-secret-that-is-long-enough-for-hs256"

func newTestManager() *JWTManager {
	return NewJWTManager(config.SessionConfig{Secret: testSecret, TTL: time.Hour}, "Storefront")
}

func TestJWTManager_RoundTrip(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateSessionToken("session-1")
	require.NoError(t, err)

	id, err := m.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", id)
}

func TestJWTManager_Rejects(t *testing.T) {
	m := newTestManager()
	valid, err := m.GenerateSessionToken("session-1")
	require.NoError(t, err)

	expired := newTestManager()
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.GenerateSessionToken("session-1")
	require.NoError(t, err)

	otherSecret := NewJWTManager(config.SessionConfig{Secret: "another-secret-that-is-long-enough-too", TTL: time.Hour}, "Storefront")
	foreignToken, err := otherSecret.GenerateSessionToken("session-1")
	require.NoError(t, err)

	otherIssuer := NewJWTManager(config.SessionConfig{Secret: testSecret, TTL: time.Hour}, "Elsewhere")
	issuerToken, err := otherIssuer.GenerateSessionToken("session-1")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{SessionID: "session-1", TokenType: sessionTokenType}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "tampered token: error", token: valid + "x"},
		{name: "expired token: error", token: expiredToken},
		{name: "foreign secret: error", token: foreignToken},
		{name: "foreign issuer: error", token: issuerToken},
		{name: "unsigned token: error", token: noneToken},
		{name: "garbage: error", token: "not-a-jwt"},
		{name: "empty: error", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.ValidateSessionToken(tt.token)
			require.Error(t, err)
		})
	}
}

func TestJWTManager_EmptySessionID(t *testing.T) {
	_, err := newTestManager().GenerateSessionToken("")
	require.EqualError(t, err, "session id is empty")
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc", ExtractTokenFromHeader("Bearer abc"))
	assert.Empty(t, ExtractTokenFromHeader("Basic abc"))
	assert.Empty(t, ExtractTokenFromHeader(""))
}

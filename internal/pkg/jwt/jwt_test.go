package jwt

import (
	"context"
	"testing"

	"github.com/clockport/clockport-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret-key", "1h", "168h")
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := newTestService()

	tokenString, expiresAt, err := svc.GenerateAccessToken("u-1", "mario@rossi.it", "o-1", user.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "u-1", claims["user_id"])
	assert.Equal(t, "mario@rossi.it", claims["email"])
	assert.Equal(t, "o-1", claims["org_id"])
	assert.Equal(t, "ADMIN", claims["role"])
	assert.Equal(t, "access", claims["type"])
	assert.NotEmpty(t, claims["jti"])
}

func TestGenerateRefreshToken_Claims(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("u-1")
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "u-1", claims["user_id"])
	assert.Equal(t, "refresh", claims["type"])
}

func TestGenerateRefreshToken_Unique(t *testing.T) {
	svc := newTestService()

	first, _, err := svc.GenerateRefreshToken("u-1")
	require.NoError(t, err)
	second, _, err := svc.GenerateRefreshToken("u-1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "jti must distinguish tokens issued in the same second")
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("u-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))
	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))
}

func TestDecode_WrongSecret(t *testing.T) {
	svc := newTestService()
	other := NewJWTService("another-secret", "1h", "168h")

	tokenString, _, err := svc.GenerateAccessToken("u-1", "mario@rossi.it", "o-1", user.RoleEmployee)
	require.NoError(t, err)

	_, err = other.JWTAuth().Decode(tokenString)
	assert.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestService()

	cookie := svc.RefreshTokenCookie("token-value", 1717243200)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}

package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SeakMengs/PropDesk/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Generate a token and verify it to ensure VerifyJwtToken reads back the payload
func TestJWT(t *testing.T) {
	jwtService := NewJwt(config.AuthConfig{JWT_SECRET: "test-secret"}, nil)

	token, err := jwtService.GenerateAccessToken(JWTPayload{
		ID:        "id1234",
		Email:     "test@gmail.com",
		FirstName: "Sok",
		LastName:  "Dara",
	}, time.Minute)
	require.NoError(t, err)

	claims, err := jwtService.VerifyJwtToken(token)
	require.NoError(t, err)
	assert.Equal(t, "id1234", claims.User.ID)
	assert.Equal(t, "test@gmail.com", claims.User.Email)
	assert.Greater(t, claims.EXP, claims.IAT)
}

func TestJWTRejectsWrongSecretAndExpired(t *testing.T) {
	issuer := NewJwt(config.AuthConfig{JWT_SECRET: "one"}, nil)
	verifier := NewJwt(config.AuthConfig{JWT_SECRET: "two"}, nil)

	token, err := issuer.GenerateAccessToken(JWTPayload{ID: "u1"}, time.Minute)
	require.NoError(t, err)
	_, err = verifier.VerifyJwtToken(token)
	assert.Error(t, err)

	expired, err := issuer.GenerateAccessToken(JWTPayload{ID: "u1"}, -time.Minute)
	require.NoError(t, err)
	_, err = issuer.VerifyJwtToken(expired)
	assert.Error(t, err)
}

func TestRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, GetRequestContext(ctx))
	assert.False(t, GetRequestContext(ctx).Authenticated())

	rc := NewRequestContext(&JWTClaims{User: JWTPayload{ID: "u1"}}, "10.0.0.1", "curl/8")
	SetRequestContext(ctx, rc)

	got := GetRequestContext(ctx)
	require.NotNil(t, got)
	assert.True(t, got.Authenticated())
	assert.Equal(t, "10.0.0.1", got.IPAddress)
	assert.Equal(t, "curl/8", got.UserAgent)
}

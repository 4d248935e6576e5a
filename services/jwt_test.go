package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kids-in-business/kib_api/shared"
)

func newTestJWTService() *JWTService {
	return &JWTService{
		AccessTokenDuration: time.Hour,
		jwtSecretKey:        "test-secret",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokenPair("user-1", shared.RoleTeacher)
	require.NoError(t, err)
	assert.Equal(t, int64(3600), pair.ExpiresIn)

	userID, role, err := svc.VerifyJWTToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, shared.RoleTeacher, role)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := newTestJWTService()
	svc.AccessTokenDuration = -time.Minute

	token, err := svc.ToJWT("user-1", shared.RoleTeacher)
	require.NoError(t, err)

	_, _, err = svc.VerifyJWTToken(token)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.ToJWT("user-1", shared.RoleMentor)
	require.NoError(t, err)

	other := &JWTService{AccessTokenDuration: time.Hour, jwtSecretKey: "different"}
	_, _, err = other.VerifyJWTToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = svc.ExtractTokenFromHeader("Token abc")
	assert.Error(t, err)

	token, err := svc.ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
}

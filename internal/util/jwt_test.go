package util

import (
	"testing"
	"time"

	"codedex_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret-0123456789abcdef"

func testUser() *model.User {
	return &model.User{
		UUIDBase: model.UUIDBase{ID: "user-1"},
		Name:     "Ada",
		Email:    "ada@example.com",
		Role:     model.RoleUser,
	}
}

func TestSessionTokenRoundtrip(t *testing.T) {
	token, err := GenerateSessionToken(testUser(), testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseSessionToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, model.RoleUser, claims.Role)
	assert.Equal(t, "Ada", claims.Name)
	assert.NotNil(t, claims.IssuedAt)
	assert.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestSessionTokenExpired(t *testing.T) {
	token, err := GenerateSessionToken(testUser(), testSecret, -time.Minute)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token, testSecret)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := GenerateSessionToken(testUser(), testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token, "a-different-secret-0123456789abcd")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenTampered(t *testing.T) {
	token, err := GenerateSessionToken(testUser(), testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token+"x", testSecret)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenGarbage(t *testing.T) {
	claims, err := ParseSessionToken("not-a-jwt", testSecret)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harukit/recipelog/backend/internal/service"
	"github.com/harukit/recipelog/backend/internal/testhelpers"
)

func TestRegisterAndLogin(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	auth := service.NewAuthService(db, "test-secret")

	token, err := auth.Register("Haru", "haru@example.com", "password123", "haru")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "haru", claims.Username)

	loginToken, err := auth.Login("haru@example.com", "password123")
	require.NoError(t, err)

	loginClaims, err := auth.ValidateToken(loginToken)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, loginClaims.UserID)
	assert.Equal(t, "haru", loginClaims.Username)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	auth := service.NewAuthService(db, "test-secret")

	_, err := auth.Register("Haru", "haru@example.com", "password123", "haru")
	require.NoError(t, err)

	_, err = auth.Register("Other", "haru@example.com", "password456", "other")
	assert.ErrorIs(t, err, service.ErrUserExists)

	// The existing account stays usable, so callers can fall back to Login.
	token, err := auth.Login("haru@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	auth := service.NewAuthService(db, "test-secret")

	_, err := auth.Register("Haru", "haru@example.com", "password123", "haru")
	require.NoError(t, err)

	_, err = auth.Login("haru@example.com", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	auth := service.NewAuthService(db, "test-secret")

	_, err := auth.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	auth := service.NewAuthService(db, "test-secret")

	_, err := auth.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	auth := service.NewAuthService(db, "test-secret")
	other := service.NewAuthService(db, "other-secret")

	token, err := auth.Register("Haru", "haru@example.com", "password123", "haru")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

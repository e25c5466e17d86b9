package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokamart/lokamart/internal/pkg/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "lokamart-test",
	}

	userID := uuid.New()
	tokenString, expiresAt, err := GenerateToken(userID, "viewer", AccountTypeDemo, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(tokenString, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "viewer", claims.Role)
	assert.Equal(t, AccountTypeDemo, claims.AccountType)
	assert.Equal(t, "lokamart-test", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "lokamart-test",
	}

	tokenString, _, err := GenerateToken(uuid.New(), "driver", AccountTypeReal, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "another-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "secret")
	assert.Error(t, err)
}

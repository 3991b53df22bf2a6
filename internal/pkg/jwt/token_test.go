package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corrida-app/corrida-backend/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "corrida-app",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	token, expiresAt, err := GenerateToken(userID, "driver", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, "driver", (*claims)["role"])
	assert.Equal(t, "corrida-app", (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := GenerateToken(uuid.New(), "passenger", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "a-different-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiration = -1

	token, _, err := GenerateToken(uuid.New(), "passenger", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.Secret)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "test-secret")
	assert.Error(t, err)
}

package utils

import (
	"testing"

	"campus-events-api/core/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config.SetForTest(&config.Config{JWT: config.JWTConfig{Secret: "round-trip-secret"}})

	userID := uuid.New()
	token, err := GenerateToken(userID, "organizer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAndParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "organizer", claims.Role)
}

func TestValidateAndParseToken_WrongSecret(t *testing.T) {
	config.SetForTest(&config.Config{JWT: config.JWTConfig{Secret: "secret-a"}})
	token, err := GenerateToken(uuid.New(), "student")
	require.NoError(t, err)

	config.SetForTest(&config.Config{JWT: config.JWTConfig{Secret: "secret-b"}})
	_, err = ValidateAndParseToken(token)
	assert.Error(t, err)
}

func TestGenerateReference(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		ref := GenerateReference()
		assert.Len(t, ref, 10)
		assert.False(t, seen[ref], "reference collision: %s", ref)
		seen[ref] = true
	}
}

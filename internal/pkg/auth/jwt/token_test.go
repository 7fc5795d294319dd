package jwt

import (
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestGenerateAndParseToken(t *testing.T) {
	payload := &Payload{UserID: "user-123"}

	tokenString, err := GenerateToken(payload, testSecret, UserIdentityExpiration)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	parsed, err := ParseToken(tokenString, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", parsed.UserID)
	assert.Equal(t, TokenIssuer, parsed.Issuer)
	assert.Greater(t, parsed.ExpiresAt, time.Now().Unix())
}

func TestParseTokenExpired(t *testing.T) {
	payload := &Payload{UserID: "user-123"}

	// Negative duration forces the expiry into the past.
	tokenString, err := GenerateToken(payload, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(tokenString, testSecret)
	require.Error(t, err)

	var validationErr *gojwt.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotZero(t, validationErr.Errors&gojwt.ValidationErrorExpired)
}

func TestParseTokenTamperedSignature(t *testing.T) {
	tokenString, err := GenerateToken(&Payload{UserID: "user-123"}, testSecret, UserIdentityExpiration)
	require.NoError(t, err)

	// Flip one character in the signature segment.
	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	parts[2] = string(sig)

	_, err = ParseToken(strings.Join(parts, "."), testSecret)
	assert.Error(t, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	tokenString, err := GenerateToken(&Payload{UserID: "user-123"}, testSecret, UserIdentityExpiration)
	require.NoError(t, err)

	_, err = ParseToken(tokenString, "some-other-secret")
	assert.Error(t, err)
}

func TestParseTokenMalformed(t *testing.T) {
	_, err := ParseToken("not-a-jwt", testSecret)
	assert.Error(t, err)
}

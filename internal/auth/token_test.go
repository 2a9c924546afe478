package auth

import (
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/models"
)

func testUser() *models.User {
	u := &models.User{
		Username: "alice",
		Email:    "alice@example.com",
		Role:     models.UserRoleUser,
	}
	u.ID = "4f2e6f9a-0000-0000-0000-000000000001"
	return u
}

func TestNewTokenManager_EmptySecret(t *testing.T) {
	_, err := NewTokenManager("")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestIssueAndVerify(t *testing.T) {
	tm, err := NewTokenManager("test-secret")
	require.NoError(t, err)

	token, err := tm.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "4f2e6f9a-0000-0000-0000-000000000001", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestIssue_NoExpiry(t *testing.T) {
	tm, err := NewTokenManager("test-secret")
	require.NoError(t, err)

	token, err := tm.Issue(testUser())
	require.NoError(t, err)

	claims, err := tm.Verify(token)
	require.NoError(t, err)

	// Tokens stay valid indefinitely; revocation happens through the live
	// account checks, not through an exp claim.
	assert.Nil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
}

func TestVerify_WrongSecret(t *testing.T) {
	tm1, err := NewTokenManager("secret-one")
	require.NoError(t, err)
	tm2, err := NewTokenManager("secret-two")
	require.NoError(t, err)

	token, err := tm1.Issue(testUser())
	require.NoError(t, err)

	_, err = tm2.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	tm, err := NewTokenManager("test-secret")
	require.NoError(t, err)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tm.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerify_RejectsUnsignedAlg(t *testing.T) {
	tm, err := NewTokenManager("test-secret")
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "x"})
	tokenStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

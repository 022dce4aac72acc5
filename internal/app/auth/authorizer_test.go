package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmsswimming/go_academy_backend/internal/domain/user"
)

func testAuthorizer() *Authorizer {
	return &Authorizer{
		Cost:     bcrypt.MinCost,
		Secret:   "test-secret",
		TokenTTL: 24 * time.Hour,
	}
}

func TestHashAndVerify(t *testing.T) {
	a := testAuthorizer()

	hash := a.Hash("secret1")
	assert.NotEqual(t, "secret1", hash)
	assert.NotContains(t, hash, "secret1")

	require.NoError(t, a.Verify(hash, "secret1"))
	assert.ErrorIs(t, a.Verify(hash, "wrong"), user.ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	a := testAuthorizer()

	u := &user.User{ID: 7, Email: "a@x.com", Role: user.RoleMember}
	token, err := a.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := a.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.ID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, user.RoleMember, claims.Role)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	a := testAuthorizer()
	a.TokenTTL = -time.Hour

	token, err := a.GenerateToken(&user.User{ID: 1, Email: "a@x.com", Role: user.RoleMember})
	require.NoError(t, err)

	_, err = a.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	a := testAuthorizer()

	token, err := a.GenerateToken(&user.User{ID: 1, Email: "a@x.com", Role: user.RoleMember})
	require.NoError(t, err)

	other := testAuthorizer()
	other.Secret = "another-secret"

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	a := testAuthorizer()

	_, err := a.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

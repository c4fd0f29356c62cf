package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"match-lab/errors"
)

func TestTokenService_GenerateAndResolve(t *testing.T) {
	req := require.New(t)
	service := NewTokenService("test-secret", 1*time.Hour)

	token, err := service.GenerateToken("user-1", "Alice")
	req.NoError(err)
	req.NotEmpty(token)

	userID, displayName, err := service.ResolveAuthenticatedUser(token)
	req.NoError(err)
	req.Equal("user-1", userID)
	req.Equal("Alice", displayName)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	req := require.New(t)
	service := NewTokenService("test-secret", 1*time.Hour)
	other := NewTokenService("other-secret", 1*time.Hour)

	token, err := service.GenerateToken("user-1", "Alice")
	req.NoError(err)

	_, _, err = other.ResolveAuthenticatedUser(token)
	req.ErrorIs(err, errors.ErrUnauthenticated)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	req := require.New(t)
	service := NewTokenService("test-secret", -1*time.Minute)

	token, err := service.GenerateToken("user-1", "Alice")
	req.NoError(err)

	_, _, err = service.ResolveAuthenticatedUser(token)
	req.ErrorIs(err, errors.ErrUnauthenticated)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	req := require.New(t)
	service := NewTokenService("test-secret", 1*time.Hour)

	_, _, err := service.ResolveAuthenticatedUser("not.a.token")
	req.ErrorIs(err, errors.ErrUnauthenticated)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	req := require.New(t)

	hash, err := HashPassword("Str0ng!Password")
	req.NoError(err)
	req.Contains(hash, "$argon2id$")

	ok, err := ComparePassword("Str0ng!Password", hash)
	req.NoError(err)
	req.True(ok)

	ok, err = ComparePassword("WrongPassword1!", hash)
	req.NoError(err)
	req.False(ok)
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	req := require.New(t)

	first, err := HashPassword("Str0ng!Password")
	req.NoError(err)
	second, err := HashPassword("Str0ng!Password")
	req.NoError(err)

	req.NotEqual(first, second)
}

func TestValidateRegister(t *testing.T) {
	req := require.New(t)

	valid := RegisterRequest{
		Email:       "alice@example.com",
		DisplayName: "Alice",
		Password:    "Str0ng!Password",
	}
	req.NoError(ValidateRegister(valid))

	badEmail := valid
	badEmail.Email = "not-an-email"
	req.Error(ValidateRegister(badEmail))

	tooShort := valid
	tooShort.Password = "Sh0rt!"
	req.Error(ValidateRegister(tooShort))

	noComplexity := valid
	noComplexity.Password = "alllowercaseletters"
	req.ErrorIs(ValidateRegister(noComplexity), errors.ErrInvalidPassword)
}

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrimart/internal/model"
)

const secret = "0123456789abcdef-test"

func seller() *model.User {
	return &model.User{Name: "Ramesh", Phone: "9876543210", Role: model.RoleSeller}
}

func TestTokens_IssueAndParse(t *testing.T) {
	tk := NewTokens(secret, time.Hour)

	signed, exp, err := tk.Issue(seller())
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tk.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", claims.Phone())
	assert.Equal(t, "Ramesh", claims.Name)
	assert.Equal(t, model.RoleSeller, claims.Role)
}

func TestTokens_Expired(t *testing.T) {
	tk := NewTokens(secret, time.Minute)
	tk.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	signed, _, err := tk.Issue(seller())
	require.NoError(t, err)

	tk.now = time.Now
	_, err = tk.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokens_WrongSecret(t *testing.T) {
	signed, _, err := NewTokens(secret, time.Hour).Issue(seller())
	require.NoError(t, err)

	_, err = NewTokens("another-secret-value", time.Hour).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokens_RejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{
		Role: model.RoleBuyer,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "9123456789",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokens(secret, time.Hour).Parse(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokens_RejectsUnknownRole(t *testing.T) {
	claims := Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "9123456789",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokens(secret, time.Hour).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokens_Garbage(t *testing.T) {
	_, err := NewTokens(secret, time.Hour).Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

package authorization

import (
	"context"
	"testing"
	"time"

	"github.com/cristalhq/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rentride_service/domain"
	"rentride_service/errors"
)

func TestTokenRoundtrip(t *testing.T) {
	user := &domain.User{
		ID:    primitive.NewObjectID(),
		Name:  "Mia",
		Email: "mia@example.com",
		Role:  domain.RoleUser,
	}

	token, err := GenerateToken(user, "token-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, string(user.Role), claims.Role)
	assert.Equal(t, "token-1", claims.TokenID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestVerifyGarbageToken(t *testing.T) {
	_, err := VerifyToken("definitely-not-a-jwt")
	assert.ErrorIs(t, err, errors.ErrUnauthorized)

	_, err = VerifyToken("")
	assert.ErrorIs(t, err, errors.ErrUnauthorized)
}

func TestVerifyExpiredToken(t *testing.T) {
	signer, err := jwt.NewSignerHS(jwt.HS256, jwtKey)
	require.NoError(t, err)

	claims := &Claims{
		UserID:    primitive.NewObjectID().Hex(),
		Email:     "mia@example.com",
		Role:      string(domain.RoleUser),
		TokenID:   "token-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	token, err := jwt.NewBuilder(signer).Build(claims)
	require.NoError(t, err)

	_, err = VerifyToken(token.String())
	assert.ErrorIs(t, err, errors.ErrUnauthorized)
}

func TestVerifyTokenWithWrongKey(t *testing.T) {
	signer, err := jwt.NewSignerHS(jwt.HS256, []byte("some-other-key"))
	require.NoError(t, err)

	claims := &Claims{
		UserID:    primitive.NewObjectID().Hex(),
		TokenID:   "token-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	token, err := jwt.NewBuilder(signer).Build(claims)
	require.NoError(t, err)

	_, err = VerifyToken(token.String())
	assert.ErrorIs(t, err, errors.ErrUnauthorized)
}

func TestPrincipalContext(t *testing.T) {
	principal := Principal{
		ID:    primitive.NewObjectID(),
		Email: "mia@example.com",
		Name:  "Mia",
		Role:  domain.RoleAdmin,
	}

	ctx := ContextWithPrincipal(context.Background(), principal)
	got, ok := PrincipalFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, principal, got)
	assert.True(t, got.IsAdmin())

	_, ok = PrincipalFromContext(context.Background())
	assert.False(t, ok)
}

func TestExtractBearerToken(t *testing.T) {
	assert.Equal(t, "abc", ExtractBearerToken("Bearer abc"))
	assert.Equal(t, "", ExtractBearerToken("abc"))
	assert.Equal(t, "", ExtractBearerToken(""))
	assert.Equal(t, "", ExtractBearerToken("Basic abc"))
}

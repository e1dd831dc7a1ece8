package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/bloglist-api/internal/config"
	"github.com/phrazzld/bloglist-api/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestService(t *testing.T) TokenService {
	t.Helper()
	svc, err := NewTokenService(config.AuthConfig{JWTSecret: testSecret})
	require.NoError(t, err)
	return svc
}

func TestNewTokenService_SecretTooShort(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService(config.AuthConfig{JWTSecret: "short"})
	assert.Error(t, err)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	user := &domain.User{ID: uuid.New(), Username: "root@example.com"}

	token, err := svc.Issue(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "root@example.com", claims.Username)
}

func TestTokenService_Verify_Failures(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Verify(context.Background(), "")
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Verify(context.Background(), "not.a.token")
		assert.ErrorIs(t, err, ErrMalformedToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		t.Parallel()

		other, err := NewTokenService(
			config.AuthConfig{JWTSecret: "ffffffffffffffffffffffffffffffff"},
		)
		require.NoError(t, err)

		token, err := other.Issue(
			context.Background(),
			&domain.User{ID: uuid.New(), Username: "root@example.com"},
		)
		require.NoError(t, err)

		_, err = svc.Verify(context.Background(), token)
		assert.ErrorIs(t, err, ErrMalformedToken)
	})

	t.Run("payload without identity", func(t *testing.T) {
		t.Parallel()

		// Sign a structurally valid token whose payload has no id claim.
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"username": "root@example.com",
		})
		token, err := raw.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = svc.Verify(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidClaims)
	})
}

func TestBcryptHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	digest, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", digest)

	assert.NoError(t, hasher.Compare(digest, "secret123"))
	assert.Error(t, hasher.Compare(digest, "wrong"))
}

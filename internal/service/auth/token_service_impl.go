package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/phrazzld/bloglist-api/internal/config"
	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/platform/logger"
)

// hmacTokenService implements TokenService using HMAC-SHA256 signing.
// The signing key is immutable after construction.
type hmacTokenService struct {
	signingKey []byte
}

// tokenClaims is the wire structure of the token payload.
type tokenClaims struct {
	Username string    `json:"username"`
	UserID   uuid.UUID `json:"id"`
	jwt.RegisteredClaims
}

var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a TokenService signing with the configured secret.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}

	return &hmacTokenService{
		signingKey: []byte(cfg.JWTSecret),
	}, nil
}

// Issue creates a signed token encoding the user's username and id.
// No expiry claim is set: tokens remain valid until their session is revoked.
func (s *hmacTokenService) Issue(ctx context.Context, user *domain.User) (string, error) {
	log := logger.FromContext(ctx)

	claims := tokenClaims{
		Username: user.Username,
		UserID:   user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign token",
			"error", err,
			"user_id", user.ID,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify validates a token string and returns its claims.
func (s *hmacTokenService) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&tokenClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		log.Debug("token verification failed",
			"error", err,
			"error_type", fmt.Sprintf("%T", err))
		return nil, ErrMalformedToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		log.Debug("token verification failed: invalid claims")
		return nil, ErrMalformedToken
	}

	if claims.UserID == uuid.Nil {
		log.Debug("token verification failed: missing identity claim")
		return nil, ErrInvalidClaims
	}

	return &Claims{
		UserID:   claims.UserID,
		Username: claims.Username,
	}, nil
}

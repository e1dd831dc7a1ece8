// Package middleware provides the request pipeline steps that run ahead of
// route handlers: identity resolution, resource location, tracing and rate
// limiting.
package middleware

import (
	"net/http"
	"strings"

	"github.com/phrazzld/bloglist-api/internal/api"
	"github.com/phrazzld/bloglist-api/internal/api/shared"
	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/service/auth"
	"github.com/phrazzld/bloglist-api/internal/store"
)

// AuthMiddleware resolves the acting identity from a bearer token.
type AuthMiddleware struct {
	tokenService auth.TokenService
	userStore    store.UserStore
	sessionStore store.SessionStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(
	tokenService auth.TokenService,
	userStore store.UserStore,
	sessionStore store.SessionStore,
) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		userStore:    userStore,
		sessionStore: sessionStore,
	}
}

// ExtractToken returns the bearer token from the Authorization header, or ""
// when none is present. Absence is not an error at extraction time; routes
// decide whether identity is required.
func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// RequireIdentity verifies the bearer token, loads the corresponding user
// and attaches it to the request context. Requests with no token, a token
// that fails verification, a revoked session, or a missing or disabled
// account are rejected before the handler runs. The resolution itself is
// idempotent; its only side effect is the context attachment.
func (m *AuthMiddleware) RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.resolve(r)
		if err != nil {
			api.HandleAPIError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithUser(r.Context(), user)))
	})
}

// resolve runs token verification, session lookup and account loading.
func (m *AuthMiddleware) resolve(r *http.Request) (*domain.User, error) {
	ctx := r.Context()

	claims, err := m.tokenService.Verify(ctx, ExtractToken(r))
	if err != nil {
		return nil, err
	}

	// A token without an active session record has been revoked, or was
	// never issued by this service's login flow.
	session, err := m.sessionStore.GetByToken(ctx, ExtractToken(r))
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, auth.ErrSessionRevoked
		}
		return nil, err
	}
	if !session.Active {
		return nil, auth.ErrSessionRevoked
	}

	user, err := m.userStore.GetByID(ctx, claims.UserID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, auth.ErrAccountUnavailable
		}
		return nil, err
	}
	if user.Disabled {
		return nil, auth.ErrAccountUnavailable
	}

	return user, nil
}

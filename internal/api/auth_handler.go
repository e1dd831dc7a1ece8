// Package api implements the HTTP handlers and the error normalization
// layer between the router and the stores.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/bloglist-api/internal/api/shared"
	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/service/auth"
	"github.com/phrazzld/bloglist-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	sessionStore     store.SessionStore
	tokenService     auth.TokenService
	passwordVerifier auth.PasswordVerifier
	validator        *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	sessionStore store.SessionStore,
	tokenService auth.TokenService,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		sessionStore:     sessionStore,
		tokenService:     tokenService,
		passwordVerifier: passwordVerifier,
		validator:        validator.New(),
	}
}

// Login handles POST /api/login. A wrong username and a wrong password are
// indistinguishable in the response; a disabled account is not.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidCredentials)
		return
	}

	user, err := h.userStore.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgInvalidCredentials)
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, MsgInvalidCredentials)
		return
	}

	if user.Disabled {
		shared.RespondWithError(w, r, http.StatusUnauthorized, MsgAccountDisabled)
		return
	}

	token, err := h.tokenService.Issue(r.Context(), user)
	if err != nil {
		slog.Error("failed to issue token", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, MsgUnexpected)
		return
	}

	// Record the issued token so it can be revoked later. The registry is
	// append-only from this flow's point of view.
	session, err := domain.NewSession(user.ID, token)
	if err == nil {
		err = h.sessionStore.Create(r.Context(), session)
	}
	if err != nil {
		slog.Error("failed to record session", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, MsgUnexpected)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	})
}

package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/service/auth"
	"github.com/phrazzld/bloglist-api/internal/service/authz"
	"github.com/phrazzld/bloglist-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"malformed token", auth.ErrMalformedToken, http.StatusUnauthorized},
		{"invalid claims", auth.ErrInvalidClaims, http.StatusUnauthorized},
		{"revoked session", auth.ErrSessionRevoked, http.StatusUnauthorized},
		{"account unavailable", auth.ErrAccountUnavailable, http.StatusUnauthorized},
		{"not owner", authz.ErrNotOwner, http.StatusUnauthorized},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"blog not found", store.ErrBlogNotFound, http.StatusNotFound},
		{"entry not found", store.ErrReadingListEntryNotFound, http.StatusNotFound},
		{"duplicate username", store.ErrUsernameExists, http.StatusBadRequest},
		{"missing title", store.ErrTitleMissing, http.StatusBadRequest},
		{"missing url", store.ErrURLMissing, http.StatusBadRequest},
		{"year out of bounds", store.ErrYearOutOfBounds, http.StatusBadRequest},
		{"owner missing", store.ErrOwnerMissing, http.StatusBadRequest},
		{"already read", store.ErrAlreadyRead, http.StatusBadRequest},
		{"store invalid id", store.ErrInvalidID, http.StatusBadRequest},
		{"domain invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"short username", domain.ErrUsernameTooShort, http.StatusBadRequest},
		{"short password", domain.ErrPasswordTooShort, http.StatusBadRequest},
		{"missing blog title", domain.ErrTitleRequired, http.StatusBadRequest},
		{"unclassified error", errors.New("pq: connection reset"), http.StatusInternalServerError},
		{"wrapped sentinel survives", fmt.Errorf("loading user: %w", store.ErrUserNotFound), http.StatusNotFound},
		{"wrapped auth error survives", fmt.Errorf("verify: %w", auth.ErrMalformedToken), http.StatusUnauthorized},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing token", auth.ErrMissingToken, MsgTokenMissing},
		{"malformed token", auth.ErrMalformedToken, MsgTokenInvalid},
		{"invalid claims", auth.ErrInvalidClaims, MsgTokenInvalid},
		{"revoked session", auth.ErrSessionRevoked, MsgTokenInvalid},
		{"account unavailable", auth.ErrAccountUnavailable, MsgAccountDisabled},
		{"not owner", authz.ErrNotOwner, MsgNoDeletePermission},
		{"duplicate username", store.ErrUsernameExists, "username must be unique"},
		{"missing title", store.ErrTitleMissing, "Validation error: The title field is required"},
		{"missing url", store.ErrURLMissing, "Validation error: The url field is required"},
		{
			"year out of bounds",
			store.ErrYearOutOfBounds,
			"Validation error: The year must be between 1991 and the current year",
		},
		{"owner missing", store.ErrOwnerMissing, "Validation error: owner does not exist"},
		{"short username", domain.ErrUsernameTooShort, "username must be at least 3 characters long"},
		{"invalid username", domain.ErrInvalidUsername, "username must be a valid email address"},
		{"short password", domain.ErrPasswordTooShort, "password must be at least 3 characters long"},
		{"invalid id", domain.ErrInvalidID, MsgMalformedID},
		{"already read", store.ErrAlreadyRead, MsgAlreadyRead},
		{"blog not found", store.ErrBlogNotFound, MsgBlogNotFound},
		{"user not found", store.ErrUserNotFound, MsgUserNotFound},
		{"entry not found", store.ErrReadingListEntryNotFound, "not found"},
		{"bare duplicate", store.ErrDuplicate, "duplicate value"},
		{"bare invalid entity", store.ErrInvalidEntity, "Validation error: invalid data"},
		{"unclassified error", errors.New("dial tcp 10.0.0.5:5432: timeout"), MsgUnexpected},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}

// Raw backend detail must never leak into a client-facing message, whatever
// the error kind.
func TestGetSafeErrorMessage_NeverEchoesInput(t *testing.T) {
	t.Parallel()

	raw := errors.New("password=hunter2 host=db.internal")
	msg := GetSafeErrorMessage(fmt.Errorf("%w: %v", store.ErrNotFound, raw))
	assert.NotContains(t, msg, "hunter2")
	assert.NotContains(t, msg, "db.internal")
}

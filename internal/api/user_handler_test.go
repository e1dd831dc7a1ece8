package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/mocks"
	"github.com/phrazzld/bloglist-api/internal/store"
)

func TestUserHandler_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
		wantError  string
	}{
		{
			name:       "valid registration",
			body:       `{"username":"new@example.com","name":"New User","password":"secret"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "username too short",
			body:       `{"username":"ab","name":"X","password":"secret"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "username must be at least 3 characters long",
		},
		{
			name:       "username not an email",
			body:       `{"username":"not-an-email","name":"X","password":"secret"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "username must be a valid email address",
		},
		{
			name:       "password too short",
			body:       `{"username":"new@example.com","name":"X","password":"ab"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "password must be at least 3 characters long",
		},
		{
			name:       "duplicate username",
			body:       `{"username":"taken@example.com","name":"X","password":"secret"}`,
			createErr:  store.ErrUsernameExists,
			wantStatus: http.StatusBadRequest,
			wantError:  "username must be unique",
		},
		{
			name:       "malformed JSON",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request format",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var created *domain.User
			userStore := &mocks.MockUserStore{
				CreateFn: func(_ context.Context, u *domain.User) error {
					if tc.createErr != nil {
						return tc.createErr
					}
					created = u
					return nil
				},
			}

			handler := NewUserHandler(userStore, &mocks.MockPasswordHasher{})

			req := httptest.NewRequest(
				http.MethodPost,
				"/api/users",
				bytes.NewBufferString(tc.body),
			)
			rr := httptest.NewRecorder()
			handler.Register(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)

			if tc.wantError != "" {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tc.wantError, resp["error"])
				return
			}

			require.NotNil(t, created)
			assert.Equal(t, "hashed:secret", created.HashedPassword)
			assert.Empty(t, created.Password, "plaintext must not reach the store")

			// Neither the hash nor the plaintext may appear in the response.
			assert.NotContains(t, rr.Body.String(), "secret")
			assert.NotContains(t, rr.Body.String(), "hashed")
		})
	}
}

func TestUserHandler_List(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("owner@example.com", "Owner", "secret")
	require.NoError(t, err)
	user.HashedPassword = "digest"
	user.Password = ""

	blog, err := domain.NewBlog(user.ID, "Go Blog", "Russ Cox", "https://go.dev/blog", nil, 3)
	require.NoError(t, err)

	userStore := &mocks.MockUserStore{
		ListFn: func(context.Context) ([]*domain.UserWithBlogs, error) {
			return []*domain.UserWithBlogs{
				{User: *user, Blogs: []*domain.Blog{blog}},
			}, nil
		},
	}

	handler := NewUserHandler(userStore, &mocks.MockPasswordHasher{})

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rr := httptest.NewRecorder()
	handler.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "owner@example.com", resp[0]["username"])

	blogs, ok := resp[0]["blogs"].([]any)
	require.True(t, ok)
	require.Len(t, blogs, 1)

	assert.NotContains(t, rr.Body.String(), "digest")
}

func TestUserHandler_List_Empty(t *testing.T) {
	t.Parallel()

	handler := NewUserHandler(&mocks.MockUserStore{}, &mocks.MockPasswordHasher{})

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rr := httptest.NewRecorder()
	handler.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

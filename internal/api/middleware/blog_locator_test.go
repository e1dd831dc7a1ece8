package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/bloglist-api/internal/api/shared"
	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/mocks"
	"github.com/phrazzld/bloglist-api/internal/store"
)

func locatorRequest(t *testing.T, pathID string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/blogs/"+pathID, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", pathID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestBlogLocator_Locate(t *testing.T) {
	t.Parallel()

	blog, err := domain.NewBlog(uuid.New(), "Go Blog", "", "https://go.dev/blog", nil, 0)
	require.NoError(t, err)

	tests := []struct {
		name        string
		pathID      string
		blogStore   *mocks.MockBlogStore
		wantStatus  int
		wantError   string
		wantLocated bool
	}{
		{
			name:        "existing blog is attached",
			pathID:      blog.ID.String(),
			blogStore:   &mocks.MockBlogStore{Blog: blog},
			wantStatus:  http.StatusOK,
			wantLocated: true,
		},
		{
			name:       "absent blog still reaches the handler",
			pathID:     uuid.NewString(),
			blogStore:  &mocks.MockBlogStore{Err: store.ErrBlogNotFound},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed id fails before lookup",
			pathID:     "not-a-uuid",
			blogStore:  &mocks.MockBlogStore{Blog: blog},
			wantStatus: http.StatusBadRequest,
			wantError:  "malformed id",
		},
		{
			name:       "backend failure is surfaced",
			pathID:     blog.ID.String(),
			blogStore:  &mocks.MockBlogStore{Err: errors.New("connection reset")},
			wantStatus: http.StatusInternalServerError,
			wantError:  "An unexpected error occurred",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			locator := NewBlogLocator(tc.blogStore)

			handlerRan := false
			var located *domain.Blog
			var locatedOK bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerRan = true
				located, locatedOK = shared.GetBlog(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := httptest.NewRecorder()
			locator.Locate(next).ServeHTTP(rr, locatorRequest(t, tc.pathID))

			assert.Equal(t, tc.wantStatus, rr.Code)

			if tc.wantError != "" {
				assert.False(t, handlerRan, "handler must not run on locator failure")
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tc.wantError, resp["error"])
				return
			}

			assert.True(t, handlerRan)
			assert.Equal(t, tc.wantLocated, locatedOK)
			if tc.wantLocated {
				require.NotNil(t, located)
				assert.Equal(t, blog.ID, located.ID)
			}
		})
	}
}

package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/phrazzld/bloglist-api/internal/api"
	"github.com/phrazzld/bloglist-api/internal/api/shared"
	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/store"
)

// BlogLocator loads the target blog by path identifier ahead of the route
// handler, independent of whether it exists.
type BlogLocator struct {
	blogStore store.BlogStore
}

// NewBlogLocator creates a new BlogLocator with the given dependencies.
func NewBlogLocator(blogStore store.BlogStore) *BlogLocator {
	return &BlogLocator{blogStore: blogStore}
}

// Locate parses the {id} path parameter and attaches the loaded blog to the
// request context. A syntactically invalid id fails here; an absent blog
// does not: it is deferred to the handler as "not located", so that routes
// can check ownership only when the resource exists while still returning
// 404 when it does not.
func (l *BlogLocator) Locate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			api.HandleAPIError(w, r, fmt.Errorf("%w: id", domain.ErrInvalidID))
			return
		}

		blog, err := l.blogStore.GetByID(r.Context(), id)
		if err != nil && !store.IsNotFoundError(err) {
			api.HandleAPIError(w, r, err)
			return
		}

		if blog != nil {
			r = r.WithContext(shared.WithBlog(r.Context(), blog))
		}
		next.ServeHTTP(w, r)
	})
}

package api

import (
	"net/http"

	"github.com/phrazzld/bloglist-api/internal/api/shared"
	"github.com/phrazzld/bloglist-api/internal/config"
	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/service/authz"
	"github.com/phrazzld/bloglist-api/internal/store"
)

// BlogHandler handles blog listing CRUD and author aggregation.
type BlogHandler struct {
	blogStore store.BlogStore
	authCfg   config.AuthConfig
}

// NewBlogHandler creates a new BlogHandler with the given dependencies.
func NewBlogHandler(blogStore store.BlogStore, authCfg config.AuthConfig) *BlogHandler {
	return &BlogHandler{
		blogStore: blogStore,
		authCfg:   authCfg,
	}
}

// List handles GET /api/blogs. An optional search term filters on title or
// author, case-insensitively.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	blogs, err := h.blogStore.List(r.Context(), search)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if blogs == nil {
		blogs = []*domain.BlogWithOwner{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, blogs)
}

// Create handles POST /api/blogs. The owner is always the resolved identity,
// never a field of the payload.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.GetUser(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, MsgTokenMissing)
		return
	}

	var req CreateBlogRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	likes := 0
	if req.Likes != nil {
		likes = *req.Likes
	}

	blog, err := domain.NewBlog(user.ID, req.Title, req.Author, req.URL, req.Year, likes)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.blogStore.Create(r.Context(), blog); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, blog)
}

// Get handles GET /api/blogs/{id}. The locator has already fetched the blog;
// absence becomes a 404 here, not in the middleware.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	blog, ok := shared.GetBlog(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, MsgBlogNotFound)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, blog)
}

// Update handles PUT /api/blogs/{id}. Only the like count is writable.
// Ownership is enforced only when configured; the open behavior is the
// original contract.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	blog, ok := shared.GetBlog(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, MsgBlogNotFound)
		return
	}

	if h.authCfg.EnforceUpdateOwnership {
		user, ok := shared.GetUser(r.Context())
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgTokenMissing)
			return
		}
		if err := authz.CanModify(user.ID, blog.UserID); err != nil {
			HandleAPIError(w, r, err)
			return
		}
	}

	var req UpdateBlogRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	updated, err := h.blogStore.UpdateLikes(r.Context(), blog.ID, req.Likes)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /api/blogs/{id}. A blog can only be deleted by its
// owner; the denial is reported as 401 on this route.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.GetUser(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, MsgTokenMissing)
		return
	}

	blog, ok := shared.GetBlog(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, MsgBlogNotFound)
		return
	}

	if err := authz.CanModify(user.ID, blog.UserID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.blogStore.Delete(r.Context(), blog.ID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListAuthors handles GET /api/authors: per-author article and like totals,
// most liked first.
func (h *BlogHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.blogStore.ListAuthors(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if authors == nil {
		authors = []*domain.AuthorStats{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, authors)
}

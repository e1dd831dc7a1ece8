package api

import "github.com/google/uuid"

// Common request/response structures

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// CreateUserRequest defines the payload for the registration endpoint.
// Password length is checked in the domain so the message stays identical
// to the one the persistence layer would produce.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name"`
	Password string `json:"password" validate:"required"`
}

// CreateBlogRequest defines the payload for blog creation.
// Required fields are deliberately left to the domain and the store
// constraints so their fixed error messages apply.
type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Year   *int   `json:"year"`
	Likes  *int   `json:"likes"`
}

// UpdateBlogRequest defines the payload for the likes-only blog update.
type UpdateBlogRequest struct {
	Likes int `json:"likes"`
}

// CreateReadingListRequest defines the payload for adding a blog to a
// reading list.
type CreateReadingListRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
	BlogID uuid.UUID `json:"blogId" validate:"required"`
}

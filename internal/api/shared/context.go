// Package shared holds context keys and response helpers used by handlers
// and middleware.
package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/phrazzld/bloglist-api/internal/domain"
)

// ContextKey is the type for context values set by middleware.
type ContextKey string

const (
	// UserContextKey carries the resolved *domain.User after identity
	// resolution.
	UserContextKey ContextKey = "user"

	// BlogContextKey carries the located *domain.Blog. Absence of the value
	// means the resource was not located; the route handler owns the 404.
	BlogContextKey ContextKey = "blog"

	// TraceIDKey carries the request trace ID.
	TraceIDKey ContextKey = "traceID"

	// traceIDLength is the number of random bytes in a trace ID.
	traceIDLength = 16
)

// WithUser returns a context carrying the resolved identity.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

// GetUser extracts the resolved identity from the context.
func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*domain.User)
	return user, ok && user != nil
}

// WithBlog returns a context carrying the located blog.
func WithBlog(ctx context.Context, blog *domain.Blog) context.Context {
	return context.WithValue(ctx, BlogContextKey, blog)
}

// GetBlog extracts the located blog from the context. The second return is
// false when the locator ran but found nothing.
func GetBlog(ctx context.Context) (*domain.Blog, bool) {
	blog, ok := ctx.Value(BlogContextKey).(*domain.Blog)
	return blog, ok && blog != nil
}

// SetTraceID adds a fresh trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "" when absent.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

func generateTraceID() string {
	b := make([]byte, traceIDLength)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is unrecoverable in practice.
		return "unavailable"
	}
	return hex.EncodeToString(b)
}

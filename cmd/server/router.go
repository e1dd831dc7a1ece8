package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/bloglist-api/internal/api"
	apimw "github.com/phrazzld/bloglist-api/internal/api/middleware"
	"github.com/phrazzld/bloglist-api/internal/api/shared"
	"github.com/phrazzld/bloglist-api/internal/platform/metrics"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(app.metricsCollector.Middleware)
	r.Use(apimw.Trace(app.logger))

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.sessionStore,
		app.tokenService,
		app.passwordVerifier,
	)
	userHandler := api.NewUserHandler(app.userStore, app.passwordHasher)
	blogHandler := api.NewBlogHandler(app.blogStore, app.config.Auth)
	readingListHandler := api.NewReadingListHandler(app.readingListStore)

	identity := apimw.NewAuthMiddleware(app.tokenService, app.userStore, app.sessionStore)
	blogLocator := apimw.NewBlogLocator(app.blogStore)

	r.Route("/api", func(r chi.Router) {
		r.With(app.loginRateLimiter.Limit).Post("/login", authHandler.Login)

		r.Post("/users", userHandler.Register)
		r.Get("/users", userHandler.List)

		r.Get("/blogs", blogHandler.List)
		r.Get("/authors", blogHandler.ListAuthors)
		r.With(blogLocator.Locate).Get("/blogs/{id}", blogHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(identity.RequireIdentity)

			r.Post("/blogs", blogHandler.Create)
			r.With(blogLocator.Locate).Delete("/blogs/{id}", blogHandler.Delete)

			r.Post("/readinglists", readingListHandler.Create)
			r.Put("/readinglists/{id}", readingListHandler.MarkRead)
		})

		// The likes update is open to any caller unless ownership enforcement
		// extends to updates, in which case identity is resolved first.
		updateRoute := r.With(blogLocator.Locate)
		if app.config.Auth.EnforceUpdateOwnership {
			updateRoute = updateRoute.With(identity.RequireIdentity)
		}
		updateRoute.Put("/blogs/{id}", blogHandler.Update)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler(app.metricsRegistry))

	// Requests outside the route table get a JSON 404 rather than the
	// default plain-text body.
	unknownEndpoint := func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, api.MsgUnknownEndpoint)
	}
	r.NotFound(unknownEndpoint)
	r.MethodNotAllowed(unknownEndpoint)

	return r
}

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/o-magnata69/back-end-api/internal/api"
	apiMiddleware "github.com/o-magnata69/back-end-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.RouteLogger)
	r.Use(middleware.Recoverer)

	api.RegisterRoutes(r, api.Handlers{
		Users:     api.NewUserHandler(app.userService, app.logger),
		Questions: api.NewQuestionHandler(app.questionService, app.logger),
		Health:    api.NewHealthHandler(app.healthService, app.config.API),
	})

	return r
}

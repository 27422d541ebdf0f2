package api

import (
	"github.com/go-chi/chi/v5"
)

// Handlers groups the handlers mounted by RegisterRoutes.
type Handlers struct {
	Users     *UserHandler
	Questions *QuestionHandler
	Health    *HealthHandler
}

// RegisterRoutes mounts every route of the API on r.
func RegisterRoutes(r chi.Router, h Handlers) {
	r.Get("/", h.Health.Root)
	r.Get("/health", h.Health.Liveness)

	r.Route("/usuarios", func(r chi.Router) {
		r.Get("/", h.Users.ListUsers)
		r.Post("/", h.Users.CreateUser)
		r.Get("/{id}", h.Users.GetUser)
		r.Put("/{id}", h.Users.UpdateUser)
		r.Delete("/{id}", h.Users.DeleteUser)
	})

	r.Route("/questoes", func(r chi.Router) {
		r.Get("/", h.Questions.ListQuestions)
		r.Post("/", h.Questions.CreateQuestion)
		r.Get("/{id}", h.Questions.GetQuestion)
		r.Put("/{id}", h.Questions.UpdateQuestion)
		r.Delete("/{id}", h.Questions.DeleteQuestion)
	})
}

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/infatoz/sahayak-api/internal/api"
	"github.com/infatoz/sahayak-api/internal/api/middleware"
	"github.com/infatoz/sahayak-api/internal/api/shared"
)

// newRouter wires the flow handlers into the HTTP router.
func newRouter(h *api.FlowHandler) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Trace)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/flows", func(r chi.Router) {
		r.Post("/differentiated-materials", h.DifferentiatedMaterials)
		r.Post("/local-content", h.LocalContent)
		r.Post("/knowledge-base", h.KnowledgeBase)
		r.Post("/visual-aids", h.VisualAids)
		r.Post("/interactive-story", h.InteractiveStory)
		r.Post("/lesson-plan", h.LessonPlan)

		// The quiz flows call Google APIs on the teacher's behalf and
		// accept the OAuth credential as a bearer header.
		r.Group(func(r chi.Router) {
			r.Use(middleware.AccessToken)
			r.Post("/quiz", h.Quiz)
			r.Post("/google-form-quiz", h.GoogleFormQuiz)
		})
	})

	return r
}

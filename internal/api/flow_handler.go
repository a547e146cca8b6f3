package api

import (
	"log/slog"
	"net/http"

	"github.com/infatoz/sahayak-api/internal/api/shared"
	"github.com/infatoz/sahayak-api/internal/flows"
)

// FlowHandler exposes the content-generation flows over HTTP. Handlers are
// thin: decode the body, run the flow, map the error. Input validation
// belongs to the flow itself, so a request never reaches the model
// un-validated regardless of the transport.
type FlowHandler struct {
	flows  *flows.Service
	logger *slog.Logger
}

// NewFlowHandler creates a FlowHandler.
func NewFlowHandler(flowService *flows.Service, logger *slog.Logger) *FlowHandler {
	return &FlowHandler{
		flows:  flowService,
		logger: logger,
	}
}

// DifferentiatedMaterials handles POST /api/flows/differentiated-materials.
func (h *FlowHandler) DifferentiatedMaterials(w http.ResponseWriter, r *http.Request) {
	var in flows.DifferentiatedMaterialsInput
	if err := shared.DecodeJSON(r, &in); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	out, err := h.flows.CreateDifferentiatedMaterials(r.Context(), in)
	if err != nil {
		h.respondFlowError(w, r, "differentiated-materials", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// LocalContent handles POST /api/flows/local-content.
func (h *FlowHandler) LocalContent(w http.ResponseWriter, r *http.Request) {
	var in flows.LocalContentInput
	if err := shared.DecodeJSON(r, &in); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	out, err := h.flows.GenerateLocalContent(r.Context(), in)
	if err != nil {
		h.respondFlowError(w, r, "local-content", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// KnowledgeBase handles POST /api/flows/knowledge-base.
func (h *FlowHandler) KnowledgeBase(w http.ResponseWriter, r *http.Request) {
	var in flows.KnowledgeBaseInput
	if err := shared.DecodeJSON(r, &in); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	out, err := h.flows.InstantKnowledgeBase(r.Context(), in)
	if err != nil {
		h.respondFlowError(w, r, "knowledge-base", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// VisualAids handles POST /api/flows/visual-aids.
func (h *FlowHandler) VisualAids(w http.ResponseWriter, r *http.Request) {
	var in flows.VisualAidInput
	if err := shared.DecodeJSON(r, &in); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	out, err := h.flows.DesignVisualAid(r.Context(), in)
	if err != nil {
		h.respondFlowError(w, r, "visual-aids", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// InteractiveStory handles POST /api/flows/interactive-story.
func (h *FlowHandler) InteractiveStory(w http.ResponseWriter, r *http.Request) {
	var in flows.InteractiveStoryInput
	if err := shared.DecodeJSON(r, &in); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	out, err := h.flows.GenerateInteractiveStory(r.Context(), in)
	if err != nil {
		h.respondFlowError(w, r, "interactive-story", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// LessonPlan handles POST /api/flows/lesson-plan.
func (h *FlowHandler) LessonPlan(w http.ResponseWriter, r *http.Request) {
	var in flows.LessonPlanInput
	if err := shared.DecodeJSON(r, &in); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	out, err := h.flows.GenerateLessonPlan(r.Context(), in)
	if err != nil {
		h.respondFlowError(w, r, "lesson-plan", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// Quiz handles POST /api/flows/quiz. The Google credential may come either
// in the body or as an Authorization bearer header.
func (h *FlowHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	var in flows.QuizInput
	if err := shared.DecodeJSON(r, &in); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if in.AccessToken == "" {
		in.AccessToken = shared.GetAccessToken(r.Context())
	}

	out, err := h.flows.GenerateQuiz(r.Context(), in)
	if err != nil {
		h.respondFlowError(w, r, "quiz", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// GoogleFormQuiz handles POST /api/flows/google-form-quiz.
func (h *FlowHandler) GoogleFormQuiz(w http.ResponseWriter, r *http.Request) {
	var in flows.GoogleFormQuizInput
	if err := shared.DecodeJSON(r, &in); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if in.AccessToken == "" {
		in.AccessToken = shared.GetAccessToken(r.Context())
	}

	out, err := h.flows.CreateGoogleFormQuiz(r.Context(), in)
	if err != nil {
		h.respondFlowError(w, r, "google-form-quiz", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

func (h *FlowHandler) respondFlowError(w http.ResponseWriter, r *http.Request, flow string, err error) {
	status := MapErrorToStatusCode(err)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "flow failed",
			"flow", flow,
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
	} else {
		h.logger.DebugContext(r.Context(), "flow rejected",
			"flow", flow,
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
	}
	shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
}

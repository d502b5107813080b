package assignment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	apperrors "github.com/evening-academy/academy-management/internal"
	"github.com/evening-academy/academy-management/internal/auth"
	"github.com/evening-academy/academy-management/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Service:     service,
	}
}

// Create handles POST /api/v1/assignments
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateAssignmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.HandleError(w, apperrors.NewValidationError("invalid request body", apperrors.ErrCodeValidationFailed))
		return
	}

	a, err := h.Service.CreateAssignment(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, a)
}

// Get handles GET /api/v1/assignments/{assignmentID}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.Service.GetAssignment(chi.URLParam(r, "assignmentID"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, a)
}

// Delete handles DELETE /api/v1/assignments/{assignmentID}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteAssignment(chi.URLParam(r, "assignmentID")); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListByCourse handles GET /api/v1/courses/{courseID}/assignments
func (h *Handler) ListByCourse(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.Service.ListByCourse(chi.URLParam(r, "courseID"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, assignments)
}

// Submit handles POST /api/v1/assignments/{assignmentID}/submissions
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.HandleError(w, apperrors.NewUnauthorizedError("authentication required", apperrors.ErrCodeInvalidToken))
		return
	}

	var dto SubmitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.HandleError(w, apperrors.NewValidationError("invalid request body", apperrors.ErrCodeValidationFailed))
		return
	}

	sub, err := h.Service.Submit(chi.URLParam(r, "assignmentID"), user.ID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, sub)
}

// ListSubmissions handles GET /api/v1/assignments/{assignmentID}/submissions
func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.Service.ListSubmissions(chi.URLParam(r, "assignmentID"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, subs)
}

// GradeSubmission handles PATCH /api/v1/submissions/{submissionID}
func (h *Handler) GradeSubmission(w http.ResponseWriter, r *http.Request) {
	var dto GradeSubmissionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.HandleError(w, apperrors.NewValidationError("invalid request body", apperrors.ErrCodeValidationFailed))
		return
	}

	sub, err := h.Service.GradeSubmission(chi.URLParam(r, "submissionID"), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, sub)
}

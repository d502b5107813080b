package course

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	apperrors "github.com/evening-academy/academy-management/internal"
	"github.com/evening-academy/academy-management/internal/auth"
	profileDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/profile"
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

// Create handles POST /api/v1/courses
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateCourseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Create course: invalid request body", "error", err)
		h.HandleError(w, apperrors.NewValidationError("invalid request body", apperrors.ErrCodeValidationFailed))
		return
	}

	c, err := h.Service.CreateCourse(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, c)
}

// Get handles GET /api/v1/courses/{courseID}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.GetCourse(chi.URLParam(r, "courseID"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, c)
}

// List handles GET /api/v1/courses. Teachers get only their own courses.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	if user != nil && user.Role == profileDatamodel.RoleTeacher {
		courses, err := h.Service.ListByTeacher(user.ID)
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, courses)
		return
	}

	courses, err := h.Service.ListCourses()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, courses)
}

// Update handles PATCH /api/v1/courses/{courseID}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto UpdateCourseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.HandleError(w, apperrors.NewValidationError("invalid request body", apperrors.ErrCodeValidationFailed))
		return
	}

	c, err := h.Service.UpdateCourse(chi.URLParam(r, "courseID"), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, c)
}

// Delete handles DELETE /api/v1/courses/{courseID}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteCourse(chi.URLParam(r, "courseID")); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddMaterial handles POST /api/v1/courses/{courseID}/materials
func (h *Handler) AddMaterial(w http.ResponseWriter, r *http.Request) {
	var dto AddMaterialDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.HandleError(w, apperrors.NewValidationError("invalid request body", apperrors.ErrCodeValidationFailed))
		return
	}

	c, err := h.Service.AddMaterial(chi.URLParam(r, "courseID"), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, c)
}

// RemoveMaterial handles DELETE /api/v1/courses/{courseID}/materials/{name}
func (h *Handler) RemoveMaterial(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.RemoveMaterial(chi.URLParam(r, "courseID"), chi.URLParam(r, "name"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, c)
}

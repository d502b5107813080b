package schedule

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

// Create handles POST /api/v1/schedule
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateEntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.HandleError(w, apperrors.NewValidationError("invalid request body", apperrors.ErrCodeValidationFailed))
		return
	}

	e, err := h.Service.CreateEntry(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, e)
}

// Update handles PATCH /api/v1/schedule/{entryID}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto UpdateEntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.HandleError(w, apperrors.NewValidationError("invalid request body", apperrors.ErrCodeValidationFailed))
		return
	}

	e, err := h.Service.UpdateEntry(chi.URLParam(r, "entryID"), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, e)
}

// Delete handles DELETE /api/v1/schedule/{entryID}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteEntry(chi.URLParam(r, "entryID")); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListByCourse handles GET /api/v1/courses/{courseID}/schedule
func (h *Handler) ListByCourse(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.ListByCourse(chi.URLParam(r, "courseID"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, entries)
}

// ListByDay handles GET /api/v1/schedule?day=monday
func (h *Handler) ListByDay(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")
	if day == "" {
		h.HandleError(w, apperrors.NewValidationError("day query parameter is required", apperrors.ErrCodeMissingParameter))
		return
	}

	entries, err := h.Service.ListByDay(day)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, entries)
}

// Week handles GET /api/v1/schedule/week. Teachers get the entries of their
// courses, everyone else the entries of their enrolled courses.
func (h *Handler) Week(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.HandleError(w, apperrors.NewUnauthorizedError("authentication required", apperrors.ErrCodeInvalidToken))
		return
	}

	var (
		entries interface{}
		err     error
	)
	if user.Role == profileDatamodel.RoleTeacher {
		entries, err = h.Service.WeekForTeacher(user.ID)
	} else {
		entries, err = h.Service.WeekForStudent(user.ID)
	}
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, entries)
}

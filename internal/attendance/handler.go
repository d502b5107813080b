package attendance

import (
	"encoding/json"
	"fmt"
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

// Record handles POST /api/v1/attendance
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	var dto RecordSessionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.HandleError(w, apperrors.NewValidationError("invalid request body", apperrors.ErrCodeValidationFailed))
		return
	}

	rec, err := h.Service.RecordSession(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, rec)
}

// ListByCourse handles GET /api/v1/courses/{courseID}/attendance
func (h *Handler) ListByCourse(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.ListByCourse(chi.URLParam(r, "courseID"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}

// MyRate handles GET /api/v1/courses/{courseID}/attendance/rate
func (h *Handler) MyRate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.HandleError(w, apperrors.NewUnauthorizedError("authentication required", apperrors.ErrCodeInvalidToken))
		return
	}

	studentID := user.ID
	if q := r.URL.Query().Get("student_id"); q != "" {
		studentID = q
	}

	rate, err := h.Service.RateFor(studentID, chi.URLParam(r, "courseID"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, rate)
}

// Export handles GET /api/v1/courses/{courseID}/attendance/export
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	f, err := h.Service.ExportCourseSheet(courseID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="attendance-%s.xlsx"`, courseID))
	if err := f.Write(w); err != nil {
		h.Logger.Error("failed to stream attendance export", "error", err, "course_id", courseID)
	}
}

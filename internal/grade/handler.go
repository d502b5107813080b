package grade

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
	Service  *Service
	Profiles ProfileStore
}

func NewHandler(service *Service, profiles ProfileStore) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Service:     service,
		Profiles:    profiles,
	}
}

// Record handles POST /api/v1/grades
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	var dto RecordGradeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.HandleError(w, apperrors.NewValidationError("invalid request body", apperrors.ErrCodeValidationFailed))
		return
	}

	g, err := h.Service.RecordGrade(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, g)
}

// ListMine handles GET /api/v1/grades
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.HandleError(w, apperrors.NewUnauthorizedError("authentication required", apperrors.ErrCodeInvalidToken))
		return
	}

	views, err := h.Service.ListStudentGrades(user.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, views)
}

// CourseSummary handles GET /api/v1/courses/{courseID}/grades/summary
func (h *Handler) CourseSummary(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.HandleError(w, apperrors.NewUnauthorizedError("authentication required", apperrors.ErrCodeInvalidToken))
		return
	}

	studentID := user.ID
	if q := r.URL.Query().Get("student_id"); q != "" {
		studentID = q
	}

	summary, err := h.Service.CourseSummaryFor(studentID, chi.URLParam(r, "courseID"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}

// ExportAssignment handles GET /api/v1/assignments/{assignmentID}/grades/export
func (h *Handler) ExportAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, "assignmentID")

	f, err := h.Service.ExportAssignmentSheet(assignmentID, h.Profiles)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="grades-%s.xlsx"`, assignmentID))
	if err := f.Write(w); err != nil {
		h.Logger.Error("failed to stream grade export", "error", err, "assignment_id", assignmentID)
	}
}

package rest

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/evening-academy/academy-management/internal/assignment"
	"github.com/evening-academy/academy-management/internal/attendance"
	"github.com/evening-academy/academy-management/internal/auth"
	"github.com/evening-academy/academy-management/internal/course"
	profileDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/profile"
	"github.com/evening-academy/academy-management/internal/enrollment"
	"github.com/evening-academy/academy-management/internal/grade"
	"github.com/evening-academy/academy-management/internal/message"
	"github.com/evening-academy/academy-management/internal/payment"
	"github.com/evening-academy/academy-management/internal/profile"
	"github.com/evening-academy/academy-management/internal/schedule"
	"github.com/evening-academy/academy-management/internal/transport/middleware"
	"github.com/evening-academy/academy-management/internal/transport/swagger"
	"github.com/evening-academy/academy-management/pkg/logger"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health     *HealthHandler
	Auth       *auth.Handler
	Profile    *profile.Handler
	Course     *course.Handler
	Enrollment *enrollment.Handler
	Assignment *assignment.Handler
	Grade      *grade.Handler
	Attendance *attendance.Handler
	Schedule   *schedule.Handler
	Message    *message.Handler
	Payment    *payment.Handler
}

// NewRouter mounts the full API surface. Everything under /api/v1 except
// login and refresh sits behind the auth middleware; write endpoints are
// additionally gated by role.
func NewRouter(h Handlers, allowedOrigins string) http.Handler {
	r := chi.NewRouter()

	lg := logger.L()
	r.Use(middleware.RecoveryMiddleware(lg))
	r.Use(middleware.RequestID)
	r.Use(middleware.LoggingMiddleware(lg))
	r.Use(middleware.CORS(allowedOrigins))

	r.Get("/health", h.Health.healthCheckHandler)
	r.Get("/ping", h.Health.pingHandler)
	r.Mount("/swagger", swagger.Handler())

	teacherOrAdmin := h.Auth.RequireRole(profileDatamodel.RoleTeacher)
	adminOnly := h.Auth.RequireRole()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/refresh", h.Auth.RefreshToken)

		r.Group(func(r chi.Router) {
			r.Use(h.Auth.AuthMiddleware)

			r.Get("/users/me", h.Profile.GetCurrentUser)
			r.Patch("/users/me", h.Profile.UpdateCurrentUser)

			r.Get("/courses", h.Course.List)
			r.Get("/courses/{courseID}", h.Course.Get)
			r.Get("/courses/{courseID}/assignments", h.Assignment.ListByCourse)
			r.Get("/courses/{courseID}/schedule", h.Schedule.ListByCourse)
			r.Get("/courses/{courseID}/grades/summary", h.Grade.CourseSummary)
			r.Get("/courses/{courseID}/attendance/rate", h.Attendance.MyRate)
			r.Get("/schedule", h.Schedule.ListByDay)
			r.Get("/schedule/week", h.Schedule.Week)

			r.Post("/enrollments", h.Enrollment.Request)
			r.Get("/enrollments", h.Enrollment.ListMine)

			r.Get("/assignments/{assignmentID}", h.Assignment.Get)
			r.Post("/assignments/{assignmentID}/submissions", h.Assignment.Submit)
			r.Get("/grades", h.Grade.ListMine)

			r.Post("/messages", h.Message.Send)
			r.Get("/messages", h.Message.Inbox)
			r.Get("/messages/ws", h.Message.Connect)
			r.Get("/messages/with/{userID}", h.Message.Conversation)
			r.Post("/messages/{messageID}/read", h.Message.MarkRead)

			r.Post("/payments/checkout", h.Payment.Checkout)
			r.Post("/payments/verify", h.Payment.Verify)
			r.Get("/payments/success", h.Payment.Success)
			r.Get("/payments", h.Payment.History)

			r.Group(func(r chi.Router) {
				r.Use(teacherOrAdmin)

				r.Get("/courses/{courseID}/roster", h.Enrollment.Roster)
				r.Post("/courses/{courseID}/materials", h.Course.AddMaterial)
				r.Delete("/courses/{courseID}/materials/{name}", h.Course.RemoveMaterial)

				r.Post("/assignments", h.Assignment.Create)
				r.Delete("/assignments/{assignmentID}", h.Assignment.Delete)
				r.Get("/assignments/{assignmentID}/submissions", h.Assignment.ListSubmissions)
				r.Get("/assignments/{assignmentID}/grades/export", h.Grade.ExportAssignment)
				r.Patch("/submissions/{submissionID}", h.Assignment.GradeSubmission)
				r.Post("/grades", h.Grade.Record)

				r.Post("/attendance", h.Attendance.Record)
				r.Get("/courses/{courseID}/attendance", h.Attendance.ListByCourse)
				r.Get("/courses/{courseID}/attendance/export", h.Attendance.Export)

				r.Post("/schedule", h.Schedule.Create)
				r.Patch("/schedule/{entryID}", h.Schedule.Update)
				r.Delete("/schedule/{entryID}", h.Schedule.Delete)
			})

			r.Group(func(r chi.Router) {
				r.Use(adminOnly)

				r.Post("/courses", h.Course.Create)
				r.Patch("/courses/{courseID}", h.Course.Update)
				r.Delete("/courses/{courseID}", h.Course.Delete)
				r.Patch("/enrollments/{enrollmentID}", h.Enrollment.Review)
			})
		})
	})

	return r
}

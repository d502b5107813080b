package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/evening-academy/academy-management/internal"
	"github.com/evening-academy/academy-management/internal/assignment"
	assignmentRepo "github.com/evening-academy/academy-management/internal/assignment/postgres"
	"github.com/evening-academy/academy-management/internal/attendance"
	attendanceRepo "github.com/evening-academy/academy-management/internal/attendance/postgres"
	"github.com/evening-academy/academy-management/internal/auth"
	"github.com/evening-academy/academy-management/internal/core/events"
	"github.com/evening-academy/academy-management/internal/course"
	courseRepo "github.com/evening-academy/academy-management/internal/course/postgres"
	"github.com/evening-academy/academy-management/internal/enrollment"
	enrollmentRepo "github.com/evening-academy/academy-management/internal/enrollment/postgres"
	"github.com/evening-academy/academy-management/internal/grade"
	gradeRepo "github.com/evening-academy/academy-management/internal/grade/postgres"
	"github.com/evening-academy/academy-management/internal/message"
	messageRepo "github.com/evening-academy/academy-management/internal/message/postgres"
	"github.com/evening-academy/academy-management/internal/notification"
	"github.com/evening-academy/academy-management/internal/payment"
	paymentRepo "github.com/evening-academy/academy-management/internal/payment/postgres"
	"github.com/evening-academy/academy-management/internal/paymentgateway"
	"github.com/evening-academy/academy-management/internal/profile"
	profileRepo "github.com/evening-academy/academy-management/internal/profile/postgres"
	"github.com/evening-academy/academy-management/internal/schedule"
	scheduleRepo "github.com/evening-academy/academy-management/internal/schedule/postgres"
	"github.com/evening-academy/academy-management/internal/transport/rest"
	"github.com/evening-academy/academy-management/pkg/logger"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger.Init(logEnv(cfg))
		return runServer(cfg)
	},
}

func runServer(cfg *internal.Config) error {
	lg := logger.L()

	validateOpenAPISpec(lg)

	sqlDB, err := sqlx.Connect("pgx", cfg.Database.GetDSN())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer sqlDB.Close()

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open gorm: %w", err)
	}

	eventBus := events.NewEventBus(lg)

	// Repositories
	profiles := profileRepo.NewProfileRepository(gormDB)
	courses := courseRepo.NewCourseRepository(gormDB)
	enrollments := enrollmentRepo.NewEnrollmentRepository(gormDB)
	assignments := assignmentRepo.NewAssignmentRepository(gormDB)
	grades := gradeRepo.NewGradeRepository(gormDB)
	attendanceRecords := attendanceRepo.NewAttendanceRepository(gormDB)
	scheduleEntries := scheduleRepo.NewScheduleRepository(gormDB)
	messages := messageRepo.NewMessageRepository(gormDB)
	payments := paymentRepo.NewPaymentRepository(gormDB)

	// Services
	tokenGen := auth.NewJWTTokenGenerator(
		cfg.Security.AccessTokenSecret,
		cfg.Security.RefreshTokenSecret,
		cfg.Security.AccessTokenDuration,
		cfg.Security.RefreshTokenDuration,
	)
	authSvc := auth.NewService(profiles, tokenGen, cfg.Security.BCryptCost, lg)
	profileSvc := profile.NewService(profiles, lg)
	courseSvc := course.NewService(courses, lg)
	enrollmentSvc := enrollment.NewService(enrollments, courses, profiles, eventBus, lg)
	assignmentSvc := assignment.NewService(assignments, enrollmentSvc, lg)
	gradeSvc := grade.NewService(grades, assignments, lg)
	attendanceSvc := attendance.NewService(attendanceRecords, lg)
	scheduleSvc := schedule.NewService(scheduleEntries, enrollments, courses, lg)

	hub := message.NewHub(lg)
	messageSvc := message.NewService(messages, profiles, hub, eventBus, lg)

	gateway := paymentgateway.NewStripeGateway(cfg.Payment.GatewayAPIKey, cfg.Payment.Currency, lg)
	paymentSvc := payment.NewService(payments, gateway, profiles, enrollmentSvc, eventBus, cfg.Payment, lg)

	// Event subscribers
	mailer := notification.NewMailer(cfg.Mail, lg)
	notification.NewNotifier(mailer, lg).Register(eventBus)
	payment.NewReceiptWriter(cfg.Payment.ReceiptDir, lg).Register(eventBus)

	handlers := rest.Handlers{
		Health:     rest.NewHealthHandler(sqlDB.DB),
		Auth:       auth.NewHandler(authSvc),
		Profile:    profile.NewHandler(profileSvc),
		Course:     course.NewHandler(courseSvc),
		Enrollment: enrollment.NewHandler(enrollmentSvc),
		Assignment: assignment.NewHandler(assignmentSvc),
		Grade:      grade.NewHandler(gradeSvc, profiles),
		Attendance: attendance.NewHandler(attendanceSvc),
		Schedule:   schedule.NewHandler(scheduleSvc),
		Message:    message.NewHandler(messageSvc, hub),
		Payment:    payment.NewHandler(paymentSvc),
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           rest.NewRouter(handlers, cfg.Server.AllowedOrigins),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("http server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-quit:
		lg.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	lg.Info("server stopped")
	return nil
}

// validateOpenAPISpec checks the published API document at startup so a
// malformed spec is caught before it is served.
func validateOpenAPISpec(lg *slog.Logger) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("api/openapi.yml")
	if err != nil {
		lg.Warn("openapi spec not loaded", "error", err)
		return
	}
	if err := doc.Validate(loader.Context); err != nil {
		lg.Warn("openapi spec failed validation", "error", err)
	}
}

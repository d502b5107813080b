package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	assignmentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/assignment"
	attendanceDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/attendance"
	courseDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/course"
	enrollmentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/enrollment"
	gradeDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/grade"
	profileDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/profile"
	scheduleDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/schedule"
	"github.com/evening-academy/academy-management/pkg/logger"
)

var seedClear bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo data for local development",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger.Init(logEnv(cfg))

		sqlDB, err := sqlx.Connect("pgx", cfg.Database.GetDSN())
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer sqlDB.Close()

		gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			return fmt.Errorf("open gorm: %w", err)
		}

		if seedClear {
			if err := clearSeedData(gormDB); err != nil {
				return err
			}
		}
		return seed(gormDB, cfg.Security.BCryptCost)
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedClear, "clear", false, "wipe demo tables before seeding")
}

// clearSeedData empties the demo tables in dependency order.
func clearSeedData(db *gorm.DB) error {
	tables := []string{
		"grades", "assignment_submissions", "assignments", "attendance",
		"schedule", "messages", "payments", "course_enrollments", "courses", "profiles",
	}
	for _, t := range tables {
		if err := db.Exec("DELETE FROM " + t).Error; err != nil {
			return fmt.Errorf("clear %s: %w", t, err)
		}
	}
	return nil
}

// seed is idempotent: rows are keyed on fixed ids and upserted, so running it
// twice leaves one copy of everything.
func seed(db *gorm.DB, bcryptCost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcryptCost)
	if err != nil {
		return err
	}

	insert := func(what string, value interface{}, conflictCols ...string) error {
		cols := make([]clause.Column, len(conflictCols))
		for i, c := range conflictCols {
			cols[i] = clause.Column{Name: c}
		}
		if err := db.Clauses(clause.OnConflict{Columns: cols, DoNothing: true}).Create(value).Error; err != nil {
			return fmt.Errorf("seed %s: %w", what, err)
		}
		return nil
	}

	adminID := "00000000-0000-0000-0000-000000000001"
	teacherID := "00000000-0000-0000-0000-000000000002"
	studentID := "00000000-0000-0000-0000-000000000003"
	student2ID := "00000000-0000-0000-0000-000000000004"

	profiles := []profileDatamodel.Profile{
		{ID: adminID, Name: "Ada Director", Email: "admin@academy.test", Role: profileDatamodel.RoleAdmin, PasswordHash: string(hash)},
		{ID: teacherID, Name: "Tom Teacher", Email: "teacher@academy.test", Role: profileDatamodel.RoleTeacher, PasswordHash: string(hash)},
		{ID: studentID, Name: "Sam Student", Email: "student@academy.test", Role: profileDatamodel.RoleStudent, PasswordHash: string(hash)},
		{ID: student2ID, Name: "Nina Newcomer", Email: "nina@academy.test", Role: profileDatamodel.RoleStudent, PasswordHash: string(hash)},
	}
	for i := range profiles {
		if err := insert("profile "+profiles[i].Email, &profiles[i], "id"); err != nil {
			return err
		}
	}

	cs101 := "00000000-0000-0000-0000-000000000101"
	ma201 := "00000000-0000-0000-0000-000000000102"
	en110 := "00000000-0000-0000-0000-000000000103"

	courses := []courseDatamodel.Course{
		{ID: cs101, Name: "Introduction to Programming", Code: "CS101", Description: "Foundations of programming for the evening cohort.", TeacherID: teacherID, Room: "B12"},
		{ID: ma201, Name: "Applied Mathematics", Code: "MA201", Description: "Calculus and linear algebra refresher.", TeacherID: teacherID, Room: "B14"},
		{ID: en110, Name: "Technical Writing", Code: "EN110", Description: "Clear writing for engineers.", TeacherID: teacherID, Room: "A03"},
	}
	for i := range courses {
		if err := insert("course "+courses[i].Code, &courses[i], "id"); err != nil {
			return err
		}
	}

	enrollments := []enrollmentDatamodel.Enrollment{
		{ID: uuid.New().String(), StudentID: studentID, CourseID: cs101,
			ApprovalStatus: enrollmentDatamodel.ApprovalApproved, EnrollmentStatus: enrollmentDatamodel.Enrolled},
		{ID: uuid.New().String(), StudentID: studentID, CourseID: ma201,
			ApprovalStatus: enrollmentDatamodel.ApprovalApproved, EnrollmentStatus: enrollmentDatamodel.Enrolled},
		{ID: uuid.New().String(), StudentID: student2ID, CourseID: cs101,
			ApprovalStatus: enrollmentDatamodel.ApprovalPending, EnrollmentStatus: enrollmentDatamodel.NotEnrolled},
	}
	for i := range enrollments {
		if err := insert("enrollment", &enrollments[i], "student_id", "course_id"); err != nil {
			return err
		}
	}

	entries := []scheduleDatamodel.Entry{
		{ID: "00000000-0000-0000-0000-000000000201", CourseID: cs101, DayOfWeek: "monday", StartTime: "18:00", EndTime: "19:30", Activity: "Lecture"},
		{ID: "00000000-0000-0000-0000-000000000202", CourseID: cs101, DayOfWeek: "wednesday", StartTime: "18:00", EndTime: "19:30", Activity: "Lab"},
		{ID: "00000000-0000-0000-0000-000000000203", CourseID: ma201, DayOfWeek: "tuesday", StartTime: "19:45", EndTime: "21:00", Activity: "Lecture"},
		{ID: "00000000-0000-0000-0000-000000000204", CourseID: en110, DayOfWeek: "thursday", StartTime: "18:00", EndTime: "19:00", Activity: "Workshop"},
	}
	for i := range entries {
		if err := insert("schedule entry", &entries[i], "id"); err != nil {
			return err
		}
	}

	// Two weeks of CS101 sessions, Sam present throughout, Nina absent once.
	day := time.Now().AddDate(0, 0, -14).Truncate(24 * time.Hour)
	sessions := []attendanceDatamodel.Record{
		{ID: "00000000-0000-0000-0000-000000000301", CourseID: cs101, Date: day,
			PresentStudentIDs: datatypes.NewJSONSlice([]string{studentID, student2ID})},
		{ID: "00000000-0000-0000-0000-000000000302", CourseID: cs101, Date: day.AddDate(0, 0, 2),
			PresentStudentIDs: datatypes.NewJSONSlice([]string{studentID}),
			AbsentStudentIDs:  datatypes.NewJSONSlice([]string{student2ID})},
		{ID: "00000000-0000-0000-0000-000000000303", CourseID: cs101, Date: day.AddDate(0, 0, 7),
			PresentStudentIDs: datatypes.NewJSONSlice([]string{studentID, student2ID})},
		{ID: "00000000-0000-0000-0000-000000000304", CourseID: cs101, Date: day.AddDate(0, 0, 9),
			PresentStudentIDs: datatypes.NewJSONSlice([]string{studentID, student2ID})},
	}
	for i := range sessions {
		if err := insert("attendance session", &sessions[i], "id"); err != nil {
			return err
		}
	}

	assignmentID := "00000000-0000-0000-0000-000000000401"
	due := day.AddDate(0, 0, 10)
	hw := assignmentDatamodel.Assignment{
		ID: assignmentID, CourseID: cs101, Title: "Homework 1",
		Description: "Implement a number-guessing game.", DueDate: &due,
	}
	if err := insert("assignment", &hw, "id"); err != nil {
		return err
	}

	g := gradeDatamodel.Grade{
		ID: "00000000-0000-0000-0000-000000000501", StudentID: studentID,
		AssignmentID: assignmentID, Score: 42, MaxScore: 50,
	}
	if err := insert("grade", &g, "id"); err != nil {
		return err
	}

	logger.L().Info("seed complete",
		"profiles", len(profiles), "courses", len(courses),
		"enrollments", len(enrollments), "schedule_entries", len(entries),
		"attendance_sessions", len(sessions),
		"seeded_at", time.Now().Format(time.RFC3339))
	return nil
}

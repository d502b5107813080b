package enrollment

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/evening-academy/academy-management/internal"
	enrollmentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/enrollment"
	"github.com/evening-academy/academy-management/internal/core/events"
)

type Service struct {
	repo     RepositoryAPI
	courses  CourseStore
	profiles ProfileStore
	eventBus *events.EventBus
	logger   *slog.Logger
}

func NewService(repo RepositoryAPI, courses CourseStore, profiles ProfileStore, eventBus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		courses:  courses,
		profiles: profiles,
		eventBus: eventBus,
		logger:   logger,
	}
}

// RequestEnrollment records a student's interest in a course. The row starts
// pending approval and not enrolled; payment is what flips the latter.
func (s *Service) RequestEnrollment(studentID string, dto RequestEnrollmentDTO) (*enrollmentDatamodel.Enrollment, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.courses.GetByID(dto.CourseID); err != nil {
		return nil, apperrors.ErrCourseNotFound
	}

	if existing, err := s.repo.GetByStudentAndCourse(studentID, dto.CourseID); err == nil {
		return existing, nil
	}

	e := &enrollmentDatamodel.Enrollment{
		ID:               uuid.New().String(),
		StudentID:        studentID,
		CourseID:         dto.CourseID,
		ApprovalStatus:   enrollmentDatamodel.ApprovalPending,
		EnrollmentStatus: enrollmentDatamodel.NotEnrolled,
	}

	if err := s.repo.Upsert(e); err != nil {
		s.logger.Error("failed to create enrollment request", "error", err,
			"student_id", studentID, "course_id", dto.CourseID)
		return nil, err
	}

	return e, nil
}

// Review sets the admin approval decision on an enrollment request.
func (s *Service) Review(enrollmentID string, dto ReviewEnrollmentDTO) (*enrollmentDatamodel.Enrollment, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	e, err := s.repo.GetByID(enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, err
	}

	e.ApprovalStatus = dto.ApprovalStatus
	if err := s.repo.Update(e); err != nil {
		s.logger.Error("failed to review enrollment", "error", err, "enrollment_id", enrollmentID)
		return nil, err
	}

	s.logger.Info("enrollment reviewed",
		"enrollment_id", enrollmentID, "approval_status", dto.ApprovalStatus)
	return e, nil
}

// MarkEnrolled activates the student's enrollment after a verified payment.
// Idempotent: an already enrolled pair is written back unchanged. A missing
// pair is created directly, approved, since payment implies acceptance.
func (s *Service) MarkEnrolled(ctx context.Context, studentID, courseID string) error {
	e, err := s.repo.GetByStudentAndCourse(studentID, courseID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		e = &enrollmentDatamodel.Enrollment{
			ID:        uuid.New().String(),
			StudentID: studentID,
			CourseID:  courseID,
		}
	}

	alreadyEnrolled := e.EnrollmentStatus == enrollmentDatamodel.Enrolled
	e.ApprovalStatus = enrollmentDatamodel.ApprovalApproved
	e.EnrollmentStatus = enrollmentDatamodel.Enrolled

	if err := s.repo.Upsert(e); err != nil {
		s.logger.Error("failed to activate enrollment", "error", err,
			"student_id", studentID, "course_id", courseID)
		return err
	}

	if !alreadyEnrolled && s.eventBus != nil {
		studentEmail := ""
		if p, err := s.profiles.GetByID(studentID); err == nil {
			studentEmail = p.Email
		}
		courseName := ""
		if c, err := s.courses.GetByID(courseID); err == nil {
			courseName = c.Name
		}
		s.eventBus.Publish(ctx, events.NewStudentEnrolledEvent(studentID, studentEmail, courseID, courseName))
	}

	return nil
}

func (s *Service) IsEnrolled(studentID, courseID string) (bool, error) {
	e, err := s.repo.GetByStudentAndCourse(studentID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return e.EnrollmentStatus == enrollmentDatamodel.Enrolled, nil
}

// ListForStudent returns the student's enrollments joined with their courses.
func (s *Service) ListForStudent(studentID string) ([]*EnrollmentView, error) {
	enrollments, err := s.repo.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}

	views := make([]*EnrollmentView, 0, len(enrollments))
	for _, e := range enrollments {
		view := &EnrollmentView{Enrollment: e}
		if c, err := s.courses.GetByID(e.CourseID); err == nil {
			view.Course = c
		}
		views = append(views, view)
	}
	return views, nil
}

// Roster returns a course's enrollments joined with student profiles.
func (s *Service) Roster(courseID string) ([]*RosterEntry, error) {
	if _, err := s.courses.GetByID(courseID); err != nil {
		return nil, apperrors.ErrCourseNotFound
	}

	enrollments, err := s.repo.ListByCourse(courseID)
	if err != nil {
		return nil, err
	}

	roster := make([]*RosterEntry, 0, len(enrollments))
	for _, e := range enrollments {
		entry := &RosterEntry{Enrollment: e}
		if p, err := s.profiles.GetByID(e.StudentID); err == nil {
			entry.Student = p
		}
		roster = append(roster, entry)
	}
	return roster, nil
}

package assignment

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/evening-academy/academy-management/internal"
	assignmentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/assignment"
)

type Service struct {
	repo        RepositoryAPI
	enrollments EnrollmentChecker
	logger      *slog.Logger
}

func NewService(repo RepositoryAPI, enrollments EnrollmentChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		enrollments: enrollments,
		logger:      logger,
	}
}

func (s *Service) CreateAssignment(dto CreateAssignmentDTO) (*assignmentDatamodel.Assignment, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	a := &assignmentDatamodel.Assignment{
		ID:          uuid.New().String(),
		CourseID:    dto.CourseID,
		Title:       dto.Title,
		Description: dto.Description,
		DueDate:     dto.DueDate,
		FileURL:     dto.FileURL,
		FileName:    dto.FileName,
		FileType:    dto.FileType,
	}

	if err := s.repo.Create(a); err != nil {
		s.logger.Error("failed to create assignment", "error", err, "course_id", dto.CourseID)
		return nil, err
	}

	s.logger.Info("assignment created", "assignment_id", a.ID, "course_id", a.CourseID)
	return a, nil
}

func (s *Service) GetAssignment(id string) (*assignmentDatamodel.Assignment, error) {
	a, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) DeleteAssignment(id string) error {
	if _, err := s.GetAssignment(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *Service) ListByCourse(courseID string) ([]*assignmentDatamodel.Assignment, error) {
	return s.repo.ListByCourse(courseID)
}

// Submit records a student's submission. One per (assignment, student);
// re-submitting before grading replaces the file and resets the timestamp.
func (s *Service) Submit(assignmentID, studentID string, dto SubmitDTO) (*assignmentDatamodel.Submission, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	a, err := s.GetAssignment(assignmentID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollments.IsEnrolled(studentID, a.CourseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperrors.ErrNotEnrolled
	}

	sub := &assignmentDatamodel.Submission{
		ID:           uuid.New().String(),
		AssignmentID: assignmentID,
		StudentID:    studentID,
		FileURL:      &dto.FileURL,
		FileName:     &dto.FileName,
		FileType:     &dto.FileType,
		SubmittedAt:  time.Now(),
	}

	if err := s.repo.UpsertSubmission(sub); err != nil {
		s.logger.Error("failed to save submission", "error", err,
			"assignment_id", assignmentID, "student_id", studentID)
		return nil, err
	}

	return sub, nil
}

// GradeSubmission sets score and feedback on a submission.
func (s *Service) GradeSubmission(submissionID string, dto GradeSubmissionDTO) (*assignmentDatamodel.Submission, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	sub, err := s.repo.GetSubmissionByID(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Submission not found", apperrors.ErrCodeAssignmentNotFound)
		}
		return nil, err
	}

	now := time.Now()
	sub.Grade = &dto.Grade
	sub.Feedback = dto.Feedback
	sub.GradedAt = &now

	if err := s.repo.UpdateSubmission(sub); err != nil {
		s.logger.Error("failed to grade submission", "error", err, "submission_id", submissionID)
		return nil, err
	}

	return sub, nil
}

func (s *Service) ListSubmissions(assignmentID string) ([]*assignmentDatamodel.Submission, error) {
	if _, err := s.GetAssignment(assignmentID); err != nil {
		return nil, err
	}
	return s.repo.ListSubmissions(assignmentID)
}

func (s *Service) ListStudentSubmissions(studentID string) ([]*assignmentDatamodel.Submission, error) {
	return s.repo.ListSubmissionsByStudent(studentID)
}

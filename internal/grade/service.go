package grade

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/evening-academy/academy-management/internal"
	gradeDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/grade"
)

type Service struct {
	repo        RepositoryAPI
	assignments AssignmentStore
	logger      *slog.Logger
}

func NewService(repo RepositoryAPI, assignments AssignmentStore, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		assignments: assignments,
		logger:      logger,
	}
}

func (s *Service) RecordGrade(dto RecordGradeDTO) (*gradeDatamodel.Grade, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	g := &gradeDatamodel.Grade{
		ID:           uuid.New().String(),
		StudentID:    dto.StudentID,
		AssignmentID: dto.AssignmentID,
		Score:        dto.Score,
		MaxScore:     dto.MaxScore,
	}

	if err := s.repo.Create(g); err != nil {
		s.logger.Error("failed to record grade", "error", err,
			"student_id", dto.StudentID, "assignment_id", dto.AssignmentID)
		return nil, err
	}

	return g, nil
}

func (s *Service) GetGrade(id string) (*GradeView, error) {
	g, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Grade not found", apperrors.ErrCodeAssignmentNotFound)
		}
		return nil, err
	}
	return toView(g), nil
}

func (s *Service) ListStudentGrades(studentID string) ([]*GradeView, error) {
	grades, err := s.repo.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}

	views := make([]*GradeView, len(grades))
	for i, g := range grades {
		views[i] = toView(g)
	}
	return views, nil
}

// CourseSummaryFor aggregates a student's grades across one course's
// assignments into a single percentage and letter.
func (s *Service) CourseSummaryFor(studentID, courseID string) (*CourseSummary, error) {
	assignments, err := s.assignments.ListByCourse(courseID)
	if err != nil {
		return nil, err
	}

	inCourse := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		inCourse[a.ID] = true
	}

	grades, err := s.repo.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}

	summary := &CourseSummary{
		CourseID:  courseID,
		StudentID: studentID,
	}
	for _, g := range grades {
		if !inCourse[g.AssignmentID] {
			continue
		}
		summary.GradedCount++
		summary.TotalScore += g.Score
		summary.TotalMax += g.MaxScore
	}

	if summary.TotalMax > 0 {
		summary.Percent = summary.TotalScore / summary.TotalMax * 100
	}
	summary.Letter = Letter(summary.Percent)

	return summary, nil
}

func toView(g *gradeDatamodel.Grade) *GradeView {
	percent := 0.0
	if g.MaxScore > 0 {
		percent = g.Score / g.MaxScore * 100
	}
	return &GradeView{
		Grade:   g,
		Percent: percent,
		Letter:  Letter(percent),
	}
}

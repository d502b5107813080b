package attendance

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	attendanceDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/attendance"
)

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) RecordSession(dto RecordSessionDTO) (*attendanceDatamodel.Record, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	rec := &attendanceDatamodel.Record{
		ID:                uuid.New().String(),
		CourseID:          dto.CourseID,
		Date:              dto.Date,
		PresentStudentIDs: datatypes.NewJSONSlice(dto.PresentStudentIDs),
		AbsentStudentIDs:  datatypes.NewJSONSlice(dto.AbsentStudentIDs),
	}

	if err := s.repo.Create(rec); err != nil {
		s.logger.Error("failed to record attendance", "error", err, "course_id", dto.CourseID)
		return nil, err
	}

	s.logger.Info("attendance recorded", "course_id", dto.CourseID,
		"present", len(dto.PresentStudentIDs), "absent", len(dto.AbsentStudentIDs))
	return rec, nil
}

func (s *Service) ListByCourse(courseID string) ([]*attendanceDatamodel.Record, error) {
	return s.repo.ListByCourse(courseID)
}

// RateFor computes a student's attendance rate over one course. Sessions that
// do not mention the student at all are skipped.
func (s *Service) RateFor(studentID, courseID string) (*StudentRate, error) {
	records, err := s.repo.ListByCourse(courseID)
	if err != nil {
		return nil, err
	}

	rate := &StudentRate{StudentID: studentID}
	for _, rec := range records {
		switch {
		case slices.Contains(rec.PresentStudentIDs, studentID):
			rate.Present++
		case slices.Contains(rec.AbsentStudentIDs, studentID):
			rate.Absent++
		}
	}

	if total := rate.Present + rate.Absent; total > 0 {
		rate.Rate = float64(rate.Present) / float64(total)
	}
	return rate, nil
}

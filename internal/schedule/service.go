package schedule

import (
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/evening-academy/academy-management/internal"
	enrollmentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/enrollment"
	scheduleDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/schedule"
)

var dayOrder = map[string]int{
	"monday": 0, "tuesday": 1, "wednesday": 2, "thursday": 3,
	"friday": 4, "saturday": 5, "sunday": 6,
}

type Service struct {
	repo        RepositoryAPI
	enrollments EnrollmentStore
	courses     CourseStore
	logger      *slog.Logger
}

func NewService(repo RepositoryAPI, enrollments EnrollmentStore, courses CourseStore, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		enrollments: enrollments,
		courses:     courses,
		logger:      logger,
	}
}

func (s *Service) CreateEntry(dto CreateEntryDTO) (*scheduleDatamodel.Entry, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	e := &scheduleDatamodel.Entry{
		ID:        uuid.New().String(),
		CourseID:  dto.CourseID,
		DayOfWeek: strings.ToLower(dto.DayOfWeek),
		StartTime: dto.StartTime,
		EndTime:   dto.EndTime,
		Activity:  dto.Activity,
	}

	if err := s.repo.Create(e); err != nil {
		s.logger.Error("failed to create schedule entry", "error", err, "course_id", dto.CourseID)
		return nil, err
	}

	return e, nil
}

func (s *Service) UpdateEntry(id string, dto UpdateEntryDTO) (*scheduleDatamodel.Entry, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	e, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Schedule entry not found", apperrors.ErrCodeScheduleEntryNotFound)
		}
		return nil, err
	}

	if dto.DayOfWeek != nil {
		e.DayOfWeek = strings.ToLower(*dto.DayOfWeek)
	}
	if dto.StartTime != nil {
		e.StartTime = *dto.StartTime
	}
	if dto.EndTime != nil {
		e.EndTime = *dto.EndTime
	}
	if dto.Activity != nil {
		e.Activity = *dto.Activity
	}

	// Times are HH:MM strings, lexical order is chronological order.
	if e.EndTime <= e.StartTime {
		return nil, apperrors.NewValidationFieldError("end_time", "end_time must be after start_time", apperrors.ErrCodeValidationFailed)
	}

	if err := s.repo.Update(e); err != nil {
		s.logger.Error("failed to update schedule entry", "error", err, "entry_id", id)
		return nil, err
	}
	return e, nil
}

func (s *Service) DeleteEntry(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("Schedule entry not found", apperrors.ErrCodeScheduleEntryNotFound)
		}
		return err
	}
	return s.repo.Delete(id)
}

func (s *Service) ListByCourse(courseID string) ([]*scheduleDatamodel.Entry, error) {
	return s.repo.ListByCourse(courseID)
}

func (s *Service) ListByDay(dayOfWeek string) ([]*scheduleDatamodel.Entry, error) {
	return s.repo.ListByDay(strings.ToLower(dayOfWeek))
}

// WeekForStudent collects the entries of every course the student is enrolled
// in, ordered by weekday then start time.
func (s *Service) WeekForStudent(studentID string) ([]*scheduleDatamodel.Entry, error) {
	enrollments, err := s.enrollments.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}

	var courseIDs []string
	for _, e := range enrollments {
		if e.EnrollmentStatus == enrollmentDatamodel.Enrolled {
			courseIDs = append(courseIDs, e.CourseID)
		}
	}

	return s.weekForCourses(courseIDs)
}

// WeekForTeacher collects the entries of every course the teacher owns.
func (s *Service) WeekForTeacher(teacherID string) ([]*scheduleDatamodel.Entry, error) {
	courses, err := s.courses.ListByTeacher(teacherID)
	if err != nil {
		return nil, err
	}

	courseIDs := make([]string, len(courses))
	for i, c := range courses {
		courseIDs[i] = c.ID
	}

	return s.weekForCourses(courseIDs)
}

func (s *Service) weekForCourses(courseIDs []string) ([]*scheduleDatamodel.Entry, error) {
	var week []*scheduleDatamodel.Entry
	for _, courseID := range courseIDs {
		entries, err := s.repo.ListByCourse(courseID)
		if err != nil {
			s.logger.Error("failed to list schedule entries", "error", err, "course_id", courseID)
			return nil, err
		}
		week = append(week, entries...)
	}

	sort.Slice(week, func(i, j int) bool {
		if dayOrder[week[i].DayOfWeek] != dayOrder[week[j].DayOfWeek] {
			return dayOrder[week[i].DayOfWeek] < dayOrder[week[j].DayOfWeek]
		}
		return week[i].StartTime < week[j].StartTime
	})
	return week, nil
}

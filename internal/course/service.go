package course

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/evening-academy/academy-management/internal"
	courseDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/course"
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

func (s *Service) CreateCourse(dto CreateCourseDTO) (*courseDatamodel.Course, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByCode(dto.Code); err == nil && existing != nil {
		return nil, apperrors.NewConflictError("course code already in use", apperrors.ErrCodeDuplicateCourse)
	}

	c := &courseDatamodel.Course{
		ID:          uuid.New().String(),
		Name:        dto.Name,
		Code:        dto.Code,
		Description: dto.Description,
		TeacherID:   dto.TeacherID,
		Room:        dto.Room,
	}

	if err := s.repo.Create(c); err != nil {
		s.logger.Error("failed to create course", "error", err, "code", dto.Code)
		return nil, err
	}

	s.logger.Info("course created", "course_id", c.ID, "code", c.Code)
	return c, nil
}

func (s *Service) GetCourse(id string) (*courseDatamodel.Course, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateCourse(id string, dto UpdateCourseDTO) (*courseDatamodel.Course, error) {
	c, err := s.GetCourse(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		c.Name = *dto.Name
	}
	if dto.Description != nil {
		c.Description = *dto.Description
	}
	if dto.Room != nil {
		c.Room = *dto.Room
	}

	if err := s.repo.Update(c); err != nil {
		s.logger.Error("failed to update course", "error", err, "course_id", id)
		return nil, err
	}
	return c, nil
}

func (s *Service) DeleteCourse(id string) error {
	if _, err := s.GetCourse(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *Service) ListCourses() ([]*courseDatamodel.Course, error) {
	return s.repo.List()
}

func (s *Service) ListByTeacher(teacherID string) ([]*courseDatamodel.Course, error) {
	return s.repo.ListByTeacher(teacherID)
}

// AddMaterial appends a material reference to the course's JSON material list.
func (s *Service) AddMaterial(courseID string, dto AddMaterialDTO) (*courseDatamodel.Course, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	c, err := s.GetCourse(courseID)
	if err != nil {
		return nil, err
	}

	var materials []courseDatamodel.Material
	if len(c.Materials) > 0 {
		if err := json.Unmarshal(c.Materials, &materials); err != nil {
			s.logger.Error("failed to decode course materials", "error", err, "course_id", courseID)
			return nil, apperrors.NewInternalError("failed to decode course materials", err)
		}
	}

	materials = append(materials, courseDatamodel.Material{
		Name: dto.Name,
		URL:  dto.URL,
		Type: dto.Type,
	})

	encoded, err := json.Marshal(materials)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode course materials", err)
	}
	c.Materials = encoded

	if err := s.repo.Update(c); err != nil {
		s.logger.Error("failed to save course materials", "error", err, "course_id", courseID)
		return nil, err
	}
	return c, nil
}

// RemoveMaterial drops the named material from the course's list. Material
// names are the key here, the list carries no ids.
func (s *Service) RemoveMaterial(courseID, name string) (*courseDatamodel.Course, error) {
	c, err := s.GetCourse(courseID)
	if err != nil {
		return nil, err
	}

	var materials []courseDatamodel.Material
	if len(c.Materials) > 0 {
		if err := json.Unmarshal(c.Materials, &materials); err != nil {
			s.logger.Error("failed to decode course materials", "error", err, "course_id", courseID)
			return nil, apperrors.NewInternalError("failed to decode course materials", err)
		}
	}

	kept := materials[:0]
	for _, m := range materials {
		if m.Name != name {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(materials) {
		return nil, apperrors.NewNotFoundError("Material not found", apperrors.ErrCodeCourseNotFound)
	}

	encoded, err := json.Marshal(kept)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode course materials", err)
	}
	c.Materials = encoded

	if err := s.repo.Update(c); err != nil {
		s.logger.Error("failed to save course materials", "error", err, "course_id", courseID)
		return nil, err
	}
	return c, nil
}

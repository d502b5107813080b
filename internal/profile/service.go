package profile

import (
	"log/slog"

	apperrors "github.com/evening-academy/academy-management/internal"
	profileDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/profile"
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

func (s *Service) GetProfile(id string) (*profileDatamodel.Profile, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("profile not found", "error", err, "profile_id", id)
		return nil, apperrors.ErrProfileNotFound
	}
	return p, nil
}

func (s *Service) UpdateProfile(id string, dto UpdateProfileDTO) (*profileDatamodel.Profile, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrProfileNotFound
	}

	p.Name = dto.Name
	p.Phone = dto.Phone
	if dto.Avatar != nil {
		p.Avatar = dto.Avatar
	}

	if err := s.repo.Update(p); err != nil {
		s.logger.Error("failed to update profile", "error", err, "profile_id", id)
		return nil, err
	}

	return p, nil
}

func (s *Service) ListStudents() ([]*profileDatamodel.Profile, error) {
	return s.repo.ListByRole(profileDatamodel.RoleStudent)
}

package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type ProfileService interface {
	GetMine(userID string) (*models.Profile, error)
	// ReplaceMine overwrites every mutable profile field with the request
	// values, clearing whatever the client omitted.
	ReplaceMine(userID string, req *dto.ProfileUpdateRequest) (*models.Profile, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) GetMine(userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) ReplaceMine(userID string, req *dto.ProfileUpdateRequest) (*models.Profile, error) {
	profile := &models.Profile{
		UserID:       userID,
		Name:         req.Name,
		Headline:     req.Headline,
		Location:     req.Location,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Experience:   req.Experience,
		Education:    req.Education,
		About:        req.About,
		Website:      req.Website,
		LinkedIn:     req.LinkedIn,
		GitHub:       req.GitHub,
		Telegram:     req.Telegram,
		ResumeURL:    req.ResumeURL,
		PhotoURL:     req.PhotoURL,
		IsPublic:     req.IsPublic,
	}
	profile.SetSkills(req.Skills)

	if err := s.profileRepo.Replace(profile); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return s.GetMine(userID)
}

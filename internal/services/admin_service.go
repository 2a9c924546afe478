package services

import (
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// AdminService hosts the moderation primitives. Each operation is a narrow,
// irreversible, single-step mutation; there is no soft delete or undo.
type AdminService interface {
	ListUsers(page, pageSize int) (*dto.UserListResponse, error)
	// ToggleSuspend flips the suspension flag and reports the new state.
	ToggleSuspend(userID string) (*dto.SuspendResponse, error)
	// DeleteUser removes the user and cascades to its profile and postings.
	DeleteUser(userID string) error
	// ResetPassword stores a new hash without requiring the old password.
	ResetPassword(userID, newPassword string) error
	// ClearProfile nulls the free-text sections; name and links survive.
	ClearProfile(userID string) error
	// ClearSocials nulls only the link fields.
	ClearSocials(userID string) error
	DeleteJob(jobID string) error
	Stats() (*dto.StatsResponse, error)
}

type AdminServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	jobRepo     repositories.JobRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	jobRepo repositories.JobRepository,
) AdminService {
	return &AdminServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jobRepo:     jobRepo,
	}
}

func (s *AdminServiceImpl) ListUsers(page, pageSize int) (*dto.UserListResponse, error) {
	limit := pageSize
	offset := (page - 1) * pageSize

	users, err := s.userRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}

	return &dto.UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *AdminServiceImpl) ToggleSuspend(userID string) (*dto.SuspendResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	suspended := !user.Suspended
	if err := s.userRepo.SetSuspended(userID, suspended); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user suspension toggled", "user_id", userID, "suspended", suspended)

	return &dto.SuspendResponse{UserID: userID, Suspended: suspended}, nil
}

func (s *AdminServiceImpl) DeleteUser(userID string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.Info("user deleted by moderation", "user_id", userID)
	return nil
}

func (s *AdminServiceImpl) ResetPassword(userID, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(userID, hashedPassword); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) ClearProfile(userID string) error {
	if err := s.profileRepo.ClearProfileFields(userID); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrProfileNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) ClearSocials(userID string) error {
	if err := s.profileRepo.ClearSocialFields(userID); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrProfileNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) DeleteJob(jobID string) error {
	if err := s.jobRepo.Delete(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) Stats() (*dto.StatsResponse, error) {
	totalUsers, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	suspendedUsers, err := s.userRepo.CountSuspended()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	adminUsers, err := s.userRepo.CountByRole(models.UserRoleAdmin)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalJobs, err := s.jobRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.StatsResponse{
		TotalUsers:     totalUsers,
		SuspendedUsers: suspendedUsers,
		AdminUsers:     adminUsers,
		TotalJobs:      totalJobs,
	}, nil
}

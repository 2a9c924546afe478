package services

import (
	"strings"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type JobService interface {
	// Create stores a posting attributed to the authenticated author.
	Create(userID string, req *dto.CreateJobRequest) (*models.Job, error)
	// List is the public listing; no authentication involved.
	List(query *dto.JobListQuery, page, pageSize int) (*dto.JobListResponse, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) Create(userID string, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:           req.Title,
		Company:         req.Company,
		Description:     req.Description,
		Location:        req.Location,
		Salary:          req.Salary,
		Category:        req.Category,
		ExperienceLevel: req.ExperienceLevel,
		ApplyLink:       req.ApplyLink,
		LinkType:        DetectLinkType(req.ApplyLink),
		PostedBy:        userID,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) List(query *dto.JobListQuery, page, pageSize int) (*dto.JobListResponse, error) {
	jobs, total, err := s.jobRepo.FindWithFilter(repositories.JobFilter{
		Category:        query.Category,
		ExperienceLevel: query.Level,
		Search:          query.Search,
		Page:            page,
		PageSize:        pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobListResponse{
		Jobs:     jobs,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// DetectLinkType classifies the application link so the client can render
// the right call to action.
func DetectLinkType(link string) models.JobLinkType {
	l := strings.ToLower(strings.TrimSpace(link))

	switch {
	case l == "":
		return models.LinkTypeExternal
	case strings.HasPrefix(l, "mailto:"):
		return models.LinkTypeEmail
	case !strings.Contains(l, "/") && strings.Contains(l, "@"):
		// A bare address like jobs@acme.dev
		return models.LinkTypeEmail
	case strings.Contains(l, "linkedin.com"):
		return models.LinkTypeLinkedIn
	case strings.Contains(l, "t.me/") || strings.Contains(l, "telegram.me/"):
		return models.LinkTypeTelegram
	default:
		return models.LinkTypeExternal
	}
}

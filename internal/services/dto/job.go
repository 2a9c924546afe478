package dto

import "jobboard_backend/internal/models"

type CreateJobRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	Company         string `json:"company" validate:"required,max=200"`
	Description     string `json:"description"`
	Location        string `json:"location" validate:"max=120"`
	Salary          string `json:"salary" validate:"max=100"`
	Category        string `json:"category" validate:"max=60"`
	ExperienceLevel string `json:"experience_level" validate:"omitempty,oneof=intern junior mid senior lead"`
	ApplyLink       string `json:"apply_link" validate:"max=500"`
}

type JobListQuery struct {
	Category string `form:"category"`
	Level    string `form:"level"`
	Search   string `form:"search"`
}

type JobListResponse struct {
	Jobs     []models.Job `json:"jobs"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

package handlers

import (
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
)

// AppHandlers bundles the HTTP handlers for route registration.
type AppHandlers struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Job     *JobHandler
	Admin   *AdminHandler
	Upload  *UploadHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:    NewAuthHandler(base, sc.AuthService),
		Profile: NewProfileHandler(base, sc.ProfileService),
		Job:     NewJobHandler(base, sc.JobService),
		Admin:   NewAdminHandler(base, sc.AdminService),
		Upload:  NewUploadHandler(base, sc.UploadService),
	}
}

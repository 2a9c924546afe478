package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/database"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/validator"
)

// Run wires everything together and blocks serving HTTP.
func Run(cfg *config.Config) error {
	logger.Init(cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	router, err := SetupRouter(cfg, db)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// SetupRouter builds the fully wired engine without binding a listener,
// so tests can drive it with httptest.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	tokens, err := auth.NewTokenManager(cfg.JWT.Secret)
	if err != nil {
		return nil, fmt.Errorf("token manager: %w", err)
	}

	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	jobRepo := repositories.NewJobRepository(db)

	if err := EnsureAdmin(cfg, userRepo); err != nil {
		return nil, fmt.Errorf("bootstrap admin: %w", err)
	}

	sc, err := initializeServices(cfg, tokens, userRepo, profileRepo, jobRepo)
	if err != nil {
		return nil, err
	}

	appHandlers := handlers.NewAppHandlers(sc, validator.New())

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
	)

	routes.RegisterRoutes(
		router,
		appHandlers,
		middleware.Authenticate(tokens, userRepo),
		middleware.RequireAdmin(userRepo),
	)

	return router, nil
}

func initializeServices(
	cfg *config.Config,
	tokens *auth.TokenManager,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	jobRepo repositories.JobRepository,
) (*services.ServiceContainer, error) {
	var emailProvider email.Provider = email.NoopProvider{}
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(cfg)
	}

	store, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
		Bucket:   cfg.Storage.Bucket,
		Region:   cfg.Storage.Region,
		Endpoint: cfg.Storage.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	return &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo, profileRepo, tokens, emailProvider),
		ProfileService: services.NewProfileService(profileRepo),
		JobService:     services.NewJobService(jobRepo),
		AdminService:   services.NewAdminService(userRepo, profileRepo, jobRepo),
		UploadService:  services.NewUploadService(store, cfg),
	}, nil
}

// EnsureAdmin guarantees at least one admin account exists at startup.
//
// When no user holds the admin role: seed an account from the configured
// admin credentials if they are set, otherwise promote the earliest-created
// user. An empty user table with no seed credentials is left alone; the
// first registered user can be promoted on the next boot.
func EnsureAdmin(cfg *config.Config, userRepo repositories.UserRepository) error {
	admins, err := userRepo.CountByRole(models.UserRoleAdmin)
	if err != nil {
		return err
	}
	if admins > 0 {
		return nil
	}

	if cfg.Admin.Username != "" && cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		return seedAdmin(cfg, userRepo)
	}

	earliest, err := userRepo.FindEarliest()
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			logger.Info("no users yet; skipping admin bootstrap")
			return nil
		}
		return err
	}

	if err := userRepo.SetRole(earliest.ID, models.UserRoleAdmin); err != nil {
		return err
	}
	logger.Info("promoted earliest user to admin", "user_id", earliest.ID, "username", earliest.Username)
	return nil
}

func seedAdmin(cfg *config.Config, userRepo repositories.UserRepository) error {
	// The configured account may already exist as a regular user, e.g.
	// after a demotion. Promote it rather than colliding on the unique
	// username.
	if existing, err := userRepo.FindByUsername(cfg.Admin.Username); err == nil {
		if err := userRepo.SetRole(existing.ID, models.UserRoleAdmin); err != nil {
			return err
		}
		logger.Info("promoted configured account to admin", "user_id", existing.ID)
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     cfg.Admin.Username,
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := userRepo.Create(admin); err != nil {
		return err
	}
	logger.Info("seeded bootstrap admin", "user_id", admin.ID, "username", admin.Username)
	return nil
}

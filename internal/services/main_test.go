package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

type testEnv struct {
	db          *gorm.DB
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	jobRepo     repositories.JobRepository
	tokens      *auth.TokenManager

	authService    AuthService
	profileService ProfileService
	jobService     JobService
	adminService   AdminService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// Every pooled connection to :memory: is a distinct database, so pin
	// the pool to one connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.User{}, &models.Profile{}, &models.Job{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	tokens, err := auth.NewTokenManager("test-secret")
	if err != nil {
		t.Fatalf("failed to build token manager: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	jobRepo := repositories.NewJobRepository(db)

	return &testEnv{
		db:          db,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jobRepo:     jobRepo,
		tokens:      tokens,

		authService:    NewAuthService(userRepo, profileRepo, tokens, email.NoopProvider{}),
		profileService: NewProfileService(profileRepo),
		jobService:     NewJobService(jobRepo),
		adminService:   NewAdminService(userRepo, profileRepo, jobRepo),
	}
}

// register creates a user through the real registration flow and returns
// the auth payload.
func (e *testEnv) register(t *testing.T, username, emailAddr string) *dto.AuthResponse {
	t.Helper()

	resp, err := e.authService.Register(&dto.RegisterRequest{
		Username: username,
		Email:    emailAddr,
		Password: "super_password123",
	})
	if err != nil {
		t.Fatalf("failed to register %s: %v", username, err)
	}
	return resp
}

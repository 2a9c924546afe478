package services

// ServiceContainer bundles the services for handler wiring.
type ServiceContainer struct {
	AuthService    AuthService
	ProfileService ProfileService
	JobService     JobService
	AdminService   AdminService
	UploadService  UploadService
}

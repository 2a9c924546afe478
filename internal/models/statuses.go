package models

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// JobLinkType classifies how an application link should be presented.
type JobLinkType string

const (
	LinkTypeEmail    JobLinkType = "email"
	LinkTypeLinkedIn JobLinkType = "linkedin"
	LinkTypeTelegram JobLinkType = "telegram"
	LinkTypeExternal JobLinkType = "external"
)

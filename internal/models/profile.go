package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Profile is the job seeker's public card, one-to-one with User. Created at
// registration with Name defaulted to the username; cleared or deleted only
// through admin moderation or the user-deletion cascade.
type Profile struct {
	BaseModel
	UserID   string `gorm:"uniqueIndex;not null" json:"user_id"`
	Name     string `gorm:"not null" json:"name"`
	Headline string `json:"headline"`
	Location string `json:"location"`

	// Contact and free-text sections. Cleared by the clear-profile
	// moderation action.
	ContactEmail string         `json:"contact_email"`
	ContactPhone string         `json:"contact_phone"`
	Skills       datatypes.JSON `json:"skills"` // ["go", "sql", ...]
	Experience   string         `json:"experience"`
	Education    string         `json:"education"`
	About        string         `json:"about"`

	// Link fields. Cleared by the clear-socials moderation action.
	Website  string `gorm:"column:website" json:"website"`
	LinkedIn string `gorm:"column:linkedin" json:"linkedin"`
	GitHub   string `gorm:"column:github" json:"github"`
	Telegram string `gorm:"column:telegram" json:"telegram"`

	// Opaque URLs produced by the upload endpoint.
	ResumeURL string `json:"resume_url"`
	PhotoURL  string `json:"photo_url"`

	IsPublic bool `gorm:"default:true" json:"is_public"`
}

// GetSkills returns the skills column as a string slice.
func (p *Profile) GetSkills() []string {
	var skills []string
	if len(p.Skills) > 0 {
		_ = json.Unmarshal(p.Skills, &skills)
	}
	return skills
}

// SetSkills stores a string slice into the skills column.
func (p *Profile) SetSkills(skills []string) {
	data, _ := json.Marshal(skills)
	p.Skills = datatypes.JSON(data)
}

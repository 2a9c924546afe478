package models

// Job is an author-owned posting. There is no owner-initiated delete or
// edit; postings are removed only through admin moderation.
type Job struct {
	BaseModel
	Title           string      `gorm:"not null" json:"title"`
	Company         string      `gorm:"not null" json:"company"`
	Description     string      `json:"description"`
	Location        string      `json:"location"`
	Salary          string      `json:"salary"`
	Category        string      `gorm:"index" json:"category"`
	ExperienceLevel string      `gorm:"index" json:"experience_level"`
	ApplyLink       string      `json:"apply_link"`
	LinkType        JobLinkType `gorm:"type:varchar(20)" json:"link_type"`
	PostedBy        string      `gorm:"index;not null" json:"posted_by"`
}

package dto

// ProfileUpdateRequest is a FULL replacement of the profile. The client
// always submits the complete object, so omitted fields arrive as zero
// values and are written back as empty. No field here is individually
// required.
type ProfileUpdateRequest struct {
	Name         string   `json:"name" validate:"max=120"`
	Headline     string   `json:"headline" validate:"max=200"`
	Location     string   `json:"location" validate:"max=120"`
	ContactEmail string   `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string   `json:"contact_phone" validate:"max=30"`
	Skills       []string `json:"skills" validate:"max=50"`
	Experience   string   `json:"experience"`
	Education    string   `json:"education"`
	About        string   `json:"about"`
	Website      string   `json:"website" validate:"omitempty,url"`
	LinkedIn     string   `json:"linkedin" validate:"omitempty,url"`
	GitHub       string   `json:"github" validate:"omitempty,url"`
	Telegram     string   `json:"telegram" validate:"max=120"`
	ResumeURL    string   `json:"resume_url"`
	PhotoURL     string   `json:"photo_url"`
	IsPublic     bool     `json:"is_public"`
}

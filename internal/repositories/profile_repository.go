package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jobboard_backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	Create(profile *models.Profile) error
	FindByUserID(userID string) (*models.Profile, error)
	// Replace overwrites every mutable field with the given values,
	// including empty ones. The client always submits full objects, so a
	// missing field means "clear it".
	Replace(profile *models.Profile) error
	// ClearProfileFields nulls the free-text and contact sections, leaving
	// name and link fields untouched. Spam remediation, not deletion.
	ClearProfileFields(userID string) error
	// ClearSocialFields nulls only the link fields.
	ClearSocialFields(userID string) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Replace(profile *models.Profile) error {
	// A map update, not Updates(struct): gorm skips zero values on struct
	// updates and this endpoint must write empties.
	result := r.db.Model(&models.Profile{}).Where("user_id = ?", profile.UserID).
		Updates(map[string]interface{}{
			"name":          profile.Name,
			"headline":      profile.Headline,
			"location":      profile.Location,
			"contact_email": profile.ContactEmail,
			"contact_phone": profile.ContactPhone,
			"skills":        profile.Skills,
			"experience":    profile.Experience,
			"education":     profile.Education,
			"about":         profile.About,
			"website":       profile.Website,
			"linkedin":      profile.LinkedIn,
			"github":        profile.GitHub,
			"telegram":      profile.Telegram,
			"resume_url":    profile.ResumeURL,
			"photo_url":     profile.PhotoURL,
			"is_public":     profile.IsPublic,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) ClearProfileFields(userID string) error {
	result := r.db.Model(&models.Profile{}).Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"headline":      "",
			"location":      "",
			"contact_email": "",
			"contact_phone": "",
			"skills":        nil,
			"experience":    "",
			"education":     "",
			"about":         "",
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) ClearSocialFields(userID string) error {
	result := r.db.Model(&models.Profile{}).Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"website":    "",
			"linkedin":   "",
			"github":     "",
			"telegram":   "",
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

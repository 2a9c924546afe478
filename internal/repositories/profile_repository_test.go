package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobboard_backend/internal/models"
)

func createFullProfile(t *testing.T, db *gorm.DB, userID string) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		UserID:       userID,
		Name:         "Alice",
		Headline:     "Go developer",
		Location:     "Berlin",
		ContactEmail: "alice@test.com",
		ContactPhone: "+49123456",
		Experience:   "5 years",
		Education:    "BSc",
		About:        "about text",
		Website:      "https://alice.dev",
		LinkedIn:     "https://linkedin.com/in/alice",
		GitHub:       "https://github.com/alice",
		Telegram:     "@alice",
		IsPublic:     true,
	}
	profile.SetSkills([]string{"go", "sql"})

	require.NoError(t, db.Create(profile).Error)
	return profile
}

func TestProfileRepository_Replace_WritesEmptyFields(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfileRepository(db)

	user := createTestUser(t, db, "alice", "alice@test.com")
	createFullProfile(t, db, user.ID)

	// A replacement with only the name set must clear everything else.
	replacement := &models.Profile{
		UserID: user.ID,
		Name:   "Alice Renamed",
	}
	replacement.SetSkills(nil)
	require.NoError(t, repo.Replace(replacement))

	got, err := repo.FindByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Renamed", got.Name)
	assert.Empty(t, got.Headline)
	assert.Empty(t, got.Location)
	assert.Empty(t, got.ContactEmail)
	assert.Empty(t, got.About)
	assert.Empty(t, got.Website)
	assert.Empty(t, got.LinkedIn)
	assert.Empty(t, got.GetSkills())
	assert.False(t, got.IsPublic)
}

func TestProfileRepository_Replace_Missing(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfileRepository(db)

	err := repo.Replace(&models.Profile{UserID: "missing-id", Name: "x"})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileRepository_ClearProfileFields(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfileRepository(db)

	user := createTestUser(t, db, "alice", "alice@test.com")
	createFullProfile(t, db, user.ID)

	require.NoError(t, repo.ClearProfileFields(user.ID))

	got, err := repo.FindByUserID(user.ID)
	require.NoError(t, err)

	// Free-text and contact sections are gone.
	assert.Empty(t, got.Headline)
	assert.Empty(t, got.Location)
	assert.Empty(t, got.ContactEmail)
	assert.Empty(t, got.ContactPhone)
	assert.Empty(t, got.GetSkills())
	assert.Empty(t, got.Experience)
	assert.Empty(t, got.Education)
	assert.Empty(t, got.About)

	// Name and links survive.
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "https://alice.dev", got.Website)
	assert.Equal(t, "https://linkedin.com/in/alice", got.LinkedIn)
	assert.Equal(t, "https://github.com/alice", got.GitHub)
	assert.Equal(t, "@alice", got.Telegram)
}

func TestProfileRepository_ClearSocialFields(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfileRepository(db)

	user := createTestUser(t, db, "alice", "alice@test.com")
	createFullProfile(t, db, user.ID)

	require.NoError(t, repo.ClearSocialFields(user.ID))

	got, err := repo.FindByUserID(user.ID)
	require.NoError(t, err)

	// Only the links are gone.
	assert.Empty(t, got.Website)
	assert.Empty(t, got.LinkedIn)
	assert.Empty(t, got.GitHub)
	assert.Empty(t, got.Telegram)

	assert.Equal(t, "Go developer", got.Headline)
	assert.Equal(t, "about text", got.About)
	assert.Equal(t, []string{"go", "sql"}, got.GetSkills())
}

package di

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authadapters "estate_backend/internal/feature/auth/adapters"
	"estate_backend/internal/feature/media/domain/entity"
	jwtmw "estate_backend/internal/platform/jwt"
)

func TestNewSessionRepository_FallsBackToDatabase(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	repo := NewSessionRepository(nil, db)

	assert.IsType(t, authadapters.NewSessionGorm(db), repo)
}

func TestNewApp_WithoutOptionalServices(t *testing.T) {
	t.Setenv("CLOUDINARY_CLOUD_NAME", "")
	t.Setenv("GEMINI_API_KEY", "")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	app, cleanup, err := NewApp(context.Background(), Config{AIRateLimit: 1}, jwtmw.Config{Secret: "s"}, db, nil)
	require.NoError(t, err)
	defer cleanup()

	assert.NotNil(t, app.Health)
	assert.NotNil(t, app.Auth)
	assert.NotNil(t, app.Sessions)
	assert.NotNil(t, app.Property)
	assert.NotNil(t, app.Upload)
	assert.NotNil(t, app.Optimize)
}

func TestDisabledServices(t *testing.T) {
	_, err := disabledStore{}.Upload(context.Background(), entity.MediaFile{Name: "a.png"}, nil)
	assert.ErrorIs(t, err, errMediaStoreDisabled)

	_, err = disabledGenerator{}.Generate(context.Background(), "p")
	assert.ErrorIs(t, err, errGeneratorDisabled)
}

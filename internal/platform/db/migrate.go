package db

import (
	authadapters "estate_backend/internal/feature/auth/adapters"
	propertyadapters "estate_backend/internal/feature/property/adapters"

	"gorm.io/gorm"
)

// Migrate creates or updates the user, session, account, verification and properties tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authadapters.UserModel{},
		&authadapters.SessionModel{},
		&authadapters.AccountModel{},
		&authadapters.VerificationModel{},
		&propertyadapters.PropertyModel{},
	)
}

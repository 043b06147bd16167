package repository

import (
	"gorm.io/gorm"

	"healthcare-scheduling-server/internal/models"
)

// UserRepository resolves participants through GORM. It backs the service
// layer's UserDirectory.
type UserRepository struct {
	DB *gorm.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// DisplayName resolves a user identifier to a display name.
func (r *UserRepository) DisplayName(userID string) (string, error) {
	var user models.User
	if err := r.DB.First(&user, "id = ?", userID).Error; err != nil {
		return "", err
	}
	return user.DisplayName(), nil
}

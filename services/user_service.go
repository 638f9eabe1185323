package services

import (
	"errors"

	"cybertask-app/cybertask/database"
	"cybertask-app/cybertask/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserServiceInterface interface {
	GetUserById(db *database.Database, callerID uuid.UUID, id string) (models.User, error)
	UpdateUser(db *database.Database, callerID uuid.UUID, id string, input models.ProfileInput) (models.User, error)
}

type UserService struct{}

// GetUserById returns a user profile. Only the caller's own profile is
// visible; other ids fail with ErrForbidden without revealing existence.
func (s *UserService) GetUserById(db *database.Database, callerID uuid.UUID, id string) (models.User, error) {
	if id != callerID.String() {
		return models.User{}, ErrForbidden
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// UpdateUser changes display name and avatar only. Email and the password
// hash stay immutable through this path.
func (s *UserService) UpdateUser(db *database.Database, callerID uuid.UUID, id string, input models.ProfileInput) (models.User, error) {
	if id != callerID.String() {
		return models.User{}, ErrForbidden
	}

	if err := validateStruct(input); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	user.DisplayName = input.DisplayName
	user.AvatarURL = input.AvatarURL

	if err := db.DB.Save(&user).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}

var UserServiceInstance UserServiceInterface = &UserService{}

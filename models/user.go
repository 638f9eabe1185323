package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `gorm:"not null" json:"display_name"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

// SignUpInput is the payload accepted by the signup endpoint.
type SignUpInput struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// ProfileInput updates the mutable profile fields. Email and the password
// hash are not editable through this path.
type ProfileInput struct {
	DisplayName string `json:"display_name" validate:"required,min=2"`
	AvatarURL   string `json:"avatar_url" validate:"omitempty,url"`
}

package services

import (
	"time"

	"cybertask-app/cybertask/database"
	"cybertask-app/cybertask/models"
	"cybertask-app/cybertask/utils/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Use the SessionClaims from token package
type SessionClaims = token.SessionClaims

type AuthServiceInterface interface {
	Register(db *database.Database, input models.SignUpInput) (models.User, error)
	Login(db *database.Database, email, password string) (string, models.User, error)
	ValidateToken(tokenString string) (*SessionClaims, error)
	HashPassword(password string) (string, error)
	ComparePasswords(hashedPassword, password string) error
	SessionExpiration() time.Duration
}

type AuthService struct {
	jwtSecret         []byte
	sessionExpiration time.Duration
	bcryptCost        int
}

func NewAuthService(jwtSecret string, sessionExpirationHours, bcryptCost int) *AuthService {
	return &AuthService{
		jwtSecret:         []byte(jwtSecret),
		sessionExpiration: time.Duration(sessionExpirationHours) * time.Hour,
		bcryptCost:        bcryptCost,
	}
}

// Register validates the signup input, rejects duplicate emails and persists
// a new user with a hashed password. The returned user never carries the hash
// on the wire (json:"-").
func (s *AuthService) Register(db *database.Database, input models.SignUpInput) (models.User, error) {
	if err := validateStruct(input); err != nil {
		return models.User{}, err
	}

	var count int64
	if err := db.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, ErrEmailExists
	}

	hash, err := s.HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hash,
		DisplayName:  input.Name,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login verifies the credentials and issues a signed session token. Unknown
// email and wrong password collapse into the same error so the response does
// not reveal which one failed.
func (s *AuthService) Login(db *database.Database, email, password string) (string, models.User, error) {
	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	if err := s.ComparePasswords(user.PasswordHash, password); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	tokenString, err := token.GenerateToken(user.ID, user.DisplayName, user.Email, user.AvatarURL, s.jwtSecret, s.sessionExpiration)
	if err != nil {
		return "", models.User{}, err
	}

	return tokenString, user, nil
}

// ValidateToken uses the token utility to validate session tokens
func (s *AuthService) ValidateToken(tokenString string) (*SessionClaims, error) {
	return token.ValidateToken(tokenString, s.jwtSecret)
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func (s *AuthService) SessionExpiration() time.Duration {
	return s.sessionExpiration
}

var AuthServiceInstance AuthServiceInterface

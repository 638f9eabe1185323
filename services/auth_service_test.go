package services

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"cybertask-app/cybertask/models"
	"cybertask-app/cybertask/testutils"

	"gorm.io/gorm"
)

// MinCost keeps the bcrypt rounds cheap in tests; production uses cost 12.
func newTestAuthService() *AuthService {
	return NewAuthService("test-secret", 720, bcrypt.MinCost)
}

func TestRegister_Success(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	authService := newTestAuthService()
	user, err := authService.Register(db, models.SignUpInput{
		Name:     "Ann",
		Email:    "a@x.com",
		Password: "longenough",
	})
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "Ann", user.DisplayName)
	assert.NotEqual(t, "longenough", user.PasswordHash)
	assert.NoError(t, authService.ComparePasswords(user.PasswordHash, "longenough"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_EmailExists(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	authService := newTestAuthService()
	_, err := authService.Register(db, models.SignUpInput{
		Name:     "Ann",
		Email:    "a@x.com",
		Password: "longenough",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_ValidationErrors(t *testing.T) {
	db, _, close := testutils.SetupMockDB()
	defer close()

	authService := newTestAuthService()
	_, err := authService.Register(db, models.SignUpInput{
		Name:     "A",
		Email:    "not-an-email",
		Password: "short",
	})

	var fields FieldErrors
	assert.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestLogin_Success(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	authService := newTestAuthService()
	hash, err := authService.HashPassword("longenough")
	assert.NoError(t, err)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1 ORDER BY "users"."id" LIMIT \$2`).
		WithArgs("a@x.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "display_name"}).
			AddRow(userID.String(), "a@x.com", hash, "Ann"))

	tokenString, user, err := authService.Login(db, "a@x.com", "longenough")
	assert.NoError(t, err)
	assert.Equal(t, userID, user.ID)

	claims, err := authService.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "Ann", claims.Name)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_WrongPassword(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	authService := newTestAuthService()
	hash, err := authService.HashPassword("rightpassword")
	assert.NoError(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1 ORDER BY "users"."id" LIMIT \$2`).
		WithArgs("a@x.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "display_name"}).
			AddRow(uuid.New().String(), "a@x.com", hash, "Ann"))

	_, _, err = authService.Login(db, "a@x.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_UnknownEmail(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1 ORDER BY "users"."id" LIMIT \$2`).
		WithArgs("ghost@x.com", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	authService := newTestAuthService()
	_, _, err := authService.Login(db, "ghost@x.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

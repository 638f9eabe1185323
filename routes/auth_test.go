package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cybertask-app/cybertask/database"
	"cybertask-app/cybertask/models"
	"cybertask-app/cybertask/services"
	"cybertask-app/cybertask/testutils"
	"cybertask-app/cybertask/utils/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func setupAuthRouter(authService services.AuthServiceInterface) (*gin.Engine, *database.Database) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	db := &database.Database{}
	RegisterAuthRoutes(router, db, authService)
	return router, db
}

func TestSignUpRoute(t *testing.T) {
	mockService := new(testutils.MockAuthService)
	router, db := setupAuthRouter(mockService)

	input := models.SignUpInput{Name: "Ann", Email: "a@x.com", Password: "longenough"}
	user := models.User{ID: uuid.New(), Email: "a@x.com", DisplayName: "Ann"}
	mockService.On("Register", db, input).Return(user, nil)

	body, _ := json.Marshal(input)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/auth/signup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "a@x.com")
	assert.NotContains(t, w.Body.String(), "password_hash")
	mockService.AssertExpectations(t)
}

func TestSignUpRoute_Conflict(t *testing.T) {
	mockService := new(testutils.MockAuthService)
	router, db := setupAuthRouter(mockService)

	input := models.SignUpInput{Name: "Ann", Email: "a@x.com", Password: "longenough"}
	mockService.On("Register", db, input).Return(models.User{}, services.ErrEmailExists)

	body, _ := json.Marshal(input)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/auth/signup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignUpRoute_ValidationError(t *testing.T) {
	mockService := new(testutils.MockAuthService)
	router, db := setupAuthRouter(mockService)

	input := models.SignUpInput{Name: "Ann", Email: "a@x.com", Password: "short123"}
	mockService.On("Register", db, input).
		Return(models.User{}, services.FieldErrors{"password": "must be at least 8 characters"})

	body, _ := json.Marshal(input)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/auth/signup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "password")
}

func TestSignInRoute_SetsSessionCookie(t *testing.T) {
	mockService := new(testutils.MockAuthService)
	router, db := setupAuthRouter(mockService)

	user := models.User{ID: uuid.New(), Email: "a@x.com", DisplayName: "Ann"}
	mockService.On("Login", db, "a@x.com", "longenough").Return("signed-token", user, nil)
	mockService.On("SessionExpiration").Return(720 * time.Hour)

	body, _ := json.Marshal(map[string]string{"email": "a@x.com", "password": "longenough"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/auth/signin", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "signed-token")

	cookies := w.Result().Cookies()
	var sessionCookie *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == token.SessionCookieName {
			sessionCookie = cookie
		}
	}
	assert.NotNil(t, sessionCookie)
	assert.Equal(t, "signed-token", sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
	mockService.AssertExpectations(t)
}

func TestSignInRoute_InvalidCredentials(t *testing.T) {
	mockService := new(testutils.MockAuthService)
	router, db := setupAuthRouter(mockService)

	mockService.On("Login", db, "a@x.com", "wrongpassword").
		Return("", models.User{}, services.ErrInvalidCredentials)

	body, _ := json.Marshal(map[string]string{"email": "a@x.com", "password": "wrongpassword"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/auth/signin", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

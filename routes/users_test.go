package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cybertask-app/cybertask/database"
	"cybertask-app/cybertask/models"
	"cybertask-app/cybertask/services"
	"cybertask-app/cybertask/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func setupUserRouter(userID uuid.UUID, userService services.UserServiceInterface) (*gin.Engine, *database.Database) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	db := &database.Database{}
	group := router.Group("/api/v1")
	group.Use(func(c *gin.Context) { c.Set("userID", userID) })
	RegisterUserRoutes(group, db, userService)
	return router, db
}

func TestGetUserByIdRoute(t *testing.T) {
	userID := uuid.New()
	mockService := new(testutils.MockUserService)
	router, db := setupUserRouter(userID, mockService)

	user := models.User{ID: userID, Email: "a@x.com", DisplayName: "Ann"}
	mockService.On("GetUserById", db, userID, userID.String()).Return(user, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/users/"+userID.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ann")
	mockService.AssertExpectations(t)
}

func TestGetUserByIdRoute_Forbidden(t *testing.T) {
	userID := uuid.New()
	otherID := uuid.New().String()
	mockService := new(testutils.MockUserService)
	router, db := setupUserRouter(userID, mockService)

	mockService.On("GetUserById", db, userID, otherID).Return(models.User{}, services.ErrForbidden)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/users/"+otherID, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateUserRoute(t *testing.T) {
	userID := uuid.New()
	mockService := new(testutils.MockUserService)
	router, db := setupUserRouter(userID, mockService)

	input := models.ProfileInput{DisplayName: "Annie", AvatarURL: "https://cdn.example.com/annie.png"}
	updated := models.User{ID: userID, Email: "a@x.com", DisplayName: "Annie", AvatarURL: input.AvatarURL}
	mockService.On("UpdateUser", db, userID, userID.String(), input).Return(updated, nil)

	body, _ := json.Marshal(input)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/v1/users/"+userID.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Annie")
	mockService.AssertExpectations(t)
}

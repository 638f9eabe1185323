package routes

import (
	"errors"
	"net/http"

	"cybertask-app/cybertask/database"
	"cybertask-app/cybertask/models"
	"cybertask-app/cybertask/services"
	"cybertask-app/cybertask/utils/token"

	"github.com/gin-gonic/gin"
)

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type signInResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func RegisterAuthRoutes(router *gin.Engine, db *database.Database, authService services.AuthServiceInterface) {
	group := router.Group("/api/v1/auth")
	{
		group.POST("/signup", func(c *gin.Context) { SignUp(c, db, authService) })
		group.POST("/signin", func(c *gin.Context) { SignIn(c, db, authService) })
	}
}

func SignUp(c *gin.Context, db *database.Database, authService services.AuthServiceInterface) {
	var input models.SignUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := authService.Register(db, input)
	if err != nil {
		var fields services.FieldErrors
		if errors.As(err, &fields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data", "fields": fields})
			return
		}
		if errors.Is(err, services.ErrEmailExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "message": "User created successfully"})
}

func SignIn(c *gin.Context, db *database.Database, authService services.AuthServiceInterface) {
	var request signInRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	tokenString, user, err := authService.Login(db, request.Email, request.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	maxAge := int(authService.SessionExpiration().Seconds())
	c.SetCookie(token.SessionCookieName, tokenString, maxAge, "/", "", false, true)

	c.JSON(http.StatusOK, signInResponse{Token: tokenString, User: user})
}

package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cybertask-app/cybertask/config"
	"cybertask-app/cybertask/database"
	"cybertask-app/cybertask/middleware"
	"cybertask-app/cybertask/routes"
	"cybertask-app/cybertask/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize authentication service
	authService := services.NewAuthService(cfg.JWTSecret, cfg.SessionExpirationHours, cfg.BcryptCost)
	services.AuthServiceInstance = authService

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// Public authentication routes
	routes.RegisterAuthRoutes(router, db, authService)

	// Everything else requires a resolved session
	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(authService))

	routes.RegisterTaskRoutes(protected, db, services.TaskServiceInstance)
	routes.RegisterUserRoutes(protected, db, services.UserServiceInstance)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		db.Close()
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

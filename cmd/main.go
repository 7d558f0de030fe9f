package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"volunteer-connect/internal/auth"
	"volunteer-connect/internal/config"
	"volunteer-connect/internal/database"
	"volunteer-connect/internal/handlers"
	"volunteer-connect/internal/repository"
	"volunteer-connect/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(cfg.Server.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repo := repository.NewRepository(db)
	hasher := auth.NewPasswordHasher(cfg.App.BcryptCost)
	tokens := auth.NewTokenIssuer(cfg.App.JWTSecret, cfg.App.TokenTTL)

	// Initialize services
	authService := services.NewAuthService(repo, hasher, tokens)
	userService := services.NewUserService(repo)
	orgService := services.NewOrganizationService(repo)
	oppService := services.NewOpportunityService(repo)
	appService := services.NewApplicationService(repo)
	paymentService := services.NewPaymentService(repo)

	router := handlers.NewRouter(handlers.Handlers{
		Auth:          handlers.NewAuthHandler(authService, userService),
		Users:         handlers.NewUserHandler(userService),
		Organizations: handlers.NewOrganizationHandler(orgService),
		Opportunities: handlers.NewOpportunityHandler(oppService),
		Applications:  handlers.NewApplicationHandler(appService),
		Payments:      handlers.NewPaymentHandler(paymentService),
	}, tokens, cfg.Server.FrontendURL)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		log.Printf("Health check: http://localhost:%s/health", cfg.Server.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("Server exited")
}

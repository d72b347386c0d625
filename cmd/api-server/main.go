package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"bookhub/database"
	"bookhub/internal/config"
	"bookhub/internal/handler"
	"bookhub/internal/middleware"
	"bookhub/internal/repository"
	"bookhub/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close(db, logger)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	tokenService := service.NewTokenService(cfg)
	authService := service.NewAuthService(userRepo, tokenService)
	bookService := service.NewBookService(bookRepo)
	reviewService := service.NewReviewService(reviewRepo, bookRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	bookHandler := handler.NewBookHandler(bookService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := r.Group("")
	authHandler.RegisterRoutes(root)

	// Browsing and adding books/reviews needs only a valid token
	books := r.Group("/books", middleware.VerifyToken(tokenService))
	bookHandler.RegisterRoutes(books)
	reviewHandler.RegisterBookRoutes(books)

	// Everything under /profile resolves the caller to a live user row
	profile := r.Group("/profile", middleware.RequireUser(tokenService, authService))
	userHandler.RegisterRoutes(profile)
	bookHandler.RegisterProfileRoutes(profile)
	reviewHandler.RegisterProfileRoutes(profile)

	reviews := r.Group("/reviews", middleware.RequireUser(tokenService, authService))
	reviewHandler.RegisterRoutes(reviews)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting api server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"blogapi/config"
	"blogapi/database"
	"blogapi/handlers"
	"blogapi/logger"
	"blogapi/repositories"
	"blogapi/routes"
	"blogapi/storage"
)

func main() {
	logger.InitLogger()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	blobs, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		logrus.Fatalf("Failed to initialize blob store: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	followRepo := repositories.NewFollowRepository(db)
	tokenRepo := repositories.NewTokenRepository(db)

	authHandler := handlers.NewAuthHandler(userRepo, tokenRepo)
	userHandler := handlers.NewUserHandler(userRepo, followRepo, blobs)
	postHandler := handlers.NewPostHandler(postRepo, blobs)
	commentHandler := handlers.NewCommentHandler(commentRepo)
	feedHandler := handlers.NewFeedHandler(postRepo)
	systemHandler := handlers.NewSystemHandler(db)

	router := routes.SetupRoutes(
		authHandler,
		userHandler,
		postHandler,
		commentHandler,
		feedHandler,
		systemHandler,
		tokenRepo,
	)

	logrus.Infof("Server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logrus.Fatalf("Server stopped: %v", err)
	}
}

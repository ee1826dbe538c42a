package main

import (
	"log"

	"backend/api"
	"backend/config"
	"backend/controller"
	"backend/repository"
	"backend/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer config.CloseDB(db)

	userRepo := repository.NewUserRepository(db)
	jwt := config.NewJWT(cfg)
	authService := service.NewAuthService(userRepo, jwt, db)
	authController := controller.NewAuthController(authService, jwt)

	router := api.SetupRoutes(authController, jwt)
	server := api.NewServer(cfg.ServerAddr, router, cfg.ShutdownTimeout)

	server.StartWithGracefulShutdown()
}

package main

import (
	"log"
	"os"
	"time"

	"resto/auth"
	"resto/config"
	"resto/controller"
	"resto/database"
	"resto/repository"
	"resto/route"
	"resto/service"
	"resto/view"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Println("Running in debug mode")
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}

	menuRepo := repository.NewMenuItemRepository(db)
	userRepo := repository.NewUserRepository(db)
	menuService := service.NewMenuItemService(menuRepo)
	storage := service.NewFileStorage(cfg.UploadDir)

	authCtl := auth.NewController(userRepo)
	menuAPI := controller.NewMenuItemController(menuService)
	menuView := view.NewMenuItemView(menuService, storage)

	router := gin.Default()

	origins := []string{"http://localhost:3000"}
	if cfg.AllowedOrigins != "" {
		origins = append(origins, cfg.AllowedOrigins)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	route.Register(router, authCtl, menuAPI, menuView)
	log.Println("Routes configured successfully")

	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}
	router.Static("/uploads", cfg.UploadDir)

	log.Printf("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

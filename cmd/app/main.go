package main

import (
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"courseplatform/config"
	"courseplatform/internal/domain"
	"courseplatform/internal/infrastructure/cache"
	"courseplatform/internal/infrastructure/media"
	"courseplatform/internal/infrastructure/payment"
	"courseplatform/internal/infrastructure/repository"
	"courseplatform/internal/infrastructure/security"
	"courseplatform/internal/middleware"
	handlers "courseplatform/internal/transport/http"
	"courseplatform/internal/usecase"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB connect failed: %v", err)
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.Course{}, &domain.Lecture{}); err != nil {
		log.Fatalf("DB migrate failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	mediaStore, err := media.NewCloudinaryStorage(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	courseRepo := repository.NewCourseRepository(db)
	userRepo := repository.NewUserRepository(db)

	tokenManager := security.NewTokenManager(cfg.AccessSecret, cfg.RefreshSecret)
	hasher := security.NewPasswordHasher()
	tokenCache := cache.NewTokenCache(rdb)
	courseCache := cache.NewCourseCache(rdb)
	limiter := middleware.NewRateLimiter(rdb)

	courseUC := usecase.NewCourseUseCase(courseRepo, mediaStore, courseCache)
	subscriptionUC := usecase.NewSubscriptionUseCase(userRepo, gateway, cfg.RazorpayPlanID)
	authUC := usecase.NewAuthUseCase(userRepo, tokenCache, hasher, tokenManager)

	r := handlers.NewRouter(
		handlers.NewAuthHandler(authUC),
		handlers.NewCourseHandler(courseUC),
		handlers.NewPaymentHandler(subscriptionUC),
		limiter,
		tokenManager,
		cfg.FrontendURL,
	)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Course platform running on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Serve failed: %v", err)
	}
}

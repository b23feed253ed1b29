package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"courseplatform/internal/infrastructure/security"
	"courseplatform/internal/middleware"
)

func NewRouter(
	authHandler *AuthHandler,
	courseHandler *CourseHandler,
	paymentHandler *PaymentHandler,
	limiter *middleware.RateLimiter,
	tokens *security.TokenManager,
	frontendURL string,
) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	if frontendURL != "" {
		config.AllowOrigins = []string{frontendURL}
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowCredentials = frontendURL != ""
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		api.GET("/courses", courseHandler.List)

		api.POST("/register", authHandler.Register)
		api.POST("/login", limiter.Limit("login", 5, 1*time.Minute), authHandler.Login)
		api.POST("/refresh", authHandler.Refresh)
		api.GET("/logout", authHandler.Logout)

		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(tokens))
		{
			authorized.GET("/me", authHandler.Me)

			authorized.POST("/course/new", courseHandler.Create)
			authorized.GET("/course/:id", courseHandler.GetLectures)
			authorized.POST("/course/:id", courseHandler.AddLecture)
			authorized.DELETE("/course/:id", courseHandler.Delete)
			authorized.DELETE("/lecture", courseHandler.DeleteLecture)

			authorized.POST("/subscribe", paymentHandler.BuySubscription)
		}
	}

	return r
}

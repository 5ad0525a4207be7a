package routes

import (
	"time"

	"skyline/handlers"
	"skyline/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", handlers.LoginHandler)
	}
}

// RegisterChatRoutes registers the conversational endpoint. The token rides
// in the request body, so the route itself stays public: anonymous sessions
// can search and ask questions, and the assistant refuses account tools.
func RegisterChatRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/chat", handlers.ChatHandler)
	}
}

// RegisterCustomerRoutes registers account endpoints behind JWT auth.
func RegisterCustomerRoutes(r *gin.Engine) {
	api := r.Group("/api/customers")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", handlers.ProfileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r)
	RegisterChatRoutes(r)
	RegisterCustomerRoutes(r)
	RegisterHealthRoute(r)
}

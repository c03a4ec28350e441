package router

import (
	"tund/internal/handlers"
	"tund/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	userHandler := handlers.NewUserHandler()
	songHandler := handlers.NewSongHandler()
	reviewHandler := handlers.NewReviewHandler()
	shareHandler := handlers.NewShareHandler()

	// Public Routes
	r.GET("/", userHandler.Home)

	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/dashboard", userHandler.Dashboard)

		authorized.GET("/search", songHandler.Search)
		authorized.POST("/songs", songHandler.Create)

		authorized.GET("/review/:id", reviewHandler.Show)
		authorized.POST("/review/:id", reviewHandler.Create)
		authorized.GET("/my-reviews", reviewHandler.MyReviews)
		authorized.GET("/top-rated", reviewHandler.TopRated)

		authorized.GET("/share", shareHandler.ShowShare)
		authorized.POST("/share", shareHandler.Create)
		authorized.GET("/shared-reviews", shareHandler.SharedWithMe)
	}
}

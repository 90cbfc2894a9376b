package routes

import (
	"github.com/Henry-L/hl-apps/controllers"
	"github.com/Henry-L/hl-apps/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.RouterGroup) {
	router.POST("/signup", controllers.Signup())
	router.POST("/login", controllers.Login())
	router.GET("/health", controllers.Health())

	// Escape room (the session ID is the capability, no auth)
	escape := router.Group("/escape")
	{
		escape.POST("/sessions", controllers.CreateEscapeSession())
		escape.GET("/sessions/:id/items", controllers.GetEscapeItems())
		escape.POST("/sessions/:id/answers", controllers.SubmitEscapeAnswer())
		escape.POST("/sessions/:id/reset", controllers.ResetEscapeSession())
	}

	protected := router.Group("/")
	protected.Use(middleware.Authenticate())
	{
		// Current user (all authenticated)
		protected.GET("/me", controllers.GetMe())

		// ADMIN only
		protected.GET("/users",
			middleware.Authorize("ADMIN"),
			controllers.GetUsers(),
		)

		// Commute tracker (authenticated users)
		protected.POST("/commutes", controllers.CreateCommute())
		protected.GET("/commutes", controllers.GetMyCommutes())
		protected.GET("/commutes/stats", controllers.GetMyStats())
		protected.DELETE("/commutes/:id", controllers.DeleteCommute())
	}
}

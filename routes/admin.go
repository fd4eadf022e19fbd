package routes

import (
	"debatearena/controllers"
	"debatearena/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers the destructive surface behind the shared
// secret.
func SetupAdminRoutes(router *gin.Engine, secret string) {
	admin := router.Group("/admin")
	admin.Use(middlewares.AdminAuthMiddleware(secret))
	{
		admin.POST("/user/:id/ban", controllers.BanUser)
		admin.DELETE("/user/:id", controllers.PurgeUser)
		admin.POST("/wipe", controllers.WipeData)
	}
}

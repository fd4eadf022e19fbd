package routes

import (
	"debatearena/controllers"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes registers the profile, claim and inbox surface.
func SetupUserRoutes(router *gin.Engine) {
	router.POST("/user", controllers.CreateUser)
	router.GET("/user/:id", controllers.GetUser)
	router.PATCH("/user/:id", controllers.UpdateUser)

	router.POST("/user/:id/claim", controllers.AddClaim)
	router.GET("/user/:id/claims", controllers.GetClaims)
	router.DELETE("/user/:id/claim/:claimId", controllers.DeleteClaim)
	router.GET("/user/:id/contradictions", controllers.GetContradictions)
	router.GET("/user/:id/invitations", controllers.GetInvitations)
	router.GET("/user/:id/context", controllers.GetUserContext)

	router.GET("/inbox/:user", controllers.GetInbox)
	router.GET("/stats/:user", controllers.GetStats)
	router.GET("/match/:user", controllers.FindMatches)
}

// SetupDebateRoutes registers invitations, debates and the leaderboard.
func SetupDebateRoutes(router *gin.Engine) {
	router.POST("/invitation", controllers.CreateInvitation)
	router.POST("/invitation/:id/accept", controllers.AcceptInvitation)
	router.POST("/invitation/:id/reject", controllers.RejectInvitation)

	router.GET("/debates/:user", controllers.GetDebates)
	router.POST("/debate/:id/message", controllers.PostMessage)
	router.GET("/debate/:id/history", controllers.GetHistory)
	router.POST("/debate/:id/finish", controllers.FinishDebate)
	router.GET("/debate/:id/summary", controllers.GetSummary)
	router.PUT("/debate/:id/summary", controllers.PutSummary)

	router.GET("/leaderboard", controllers.GetLeaderboard)
}

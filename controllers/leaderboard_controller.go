package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const leaderboardSize = 5

// GetLeaderboard returns the global top-5 by wins - losses
func GetLeaderboard(ctx *gin.Context) {
	entries, err := statsStore.TopN(ctx, leaderboardSize)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BanUser marks a user banned without touching their data
func BanUser(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := userService.Ban(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"userId": id, "status": "banned"})
}

// PurgeUser cascades the delete over every record keyed to the user
func PurgeUser(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := adminService.PurgeUser(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"userId": id, "purged": true})
}

// WipeData clears all arena state and drops every profile
func WipeData(ctx *gin.Context) {
	if err := adminService.Wipe(ctx); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"wiped": true})
}

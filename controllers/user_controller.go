package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createUserRequest struct {
	Name string `json:"name" binding:"required"`
	Bio  string `json:"bio"`
}

type updateUserRequest struct {
	Bio    string `json:"bio"`
	Status string `json:"status"`
}

// CreateUser registers a new user. The display name is the id, so a
// taken name means a conflict.
func CreateUser(ctx *gin.Context) {
	var request createUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	user, err := userService.Register(ctx, request.Name, request.Bio)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"userId": user.ID, "name": user.Name})
}

// GetUser returns one profile
func GetUser(ctx *gin.Context) {
	user, err := userService.Get(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// UpdateUser applies a partial profile update
func UpdateUser(ctx *gin.Context) {
	var request updateUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}
	user, err := userService.UpdateProfile(ctx, ctx.Param("id"), request.Bio, request.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// GetInbox drains and returns the user's pending notifications
func GetInbox(ctx *gin.Context) {
	messages, err := inbox.Drain(ctx, ctx.Param("user"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, messages)
}

// GetStats returns the raw win/loss counters
func GetStats(ctx *gin.Context) {
	stats, err := statsStore.Get(ctx, ctx.Param("user"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetUserContext returns the aggregated user document
func GetUserContext(ctx *gin.Context) {
	document, err := contextService.Gather(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, document)
}

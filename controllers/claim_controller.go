package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addClaimRequest struct {
	Text string `json:"text" binding:"required"`
}

// AddClaim appends a claim to the user's log
func AddClaim(ctx *gin.Context) {
	var request addClaimRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}
	claim, err := claimStore.Append(ctx, ctx.Param("id"), request.Text)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, claim)
}

// GetClaims returns the user's full ordered claim log
func GetClaims(ctx *gin.Context) {
	claims, err := claimStore.List(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, claims)
}

// DeleteClaim removes one claim by id
func DeleteClaim(ctx *gin.Context) {
	claimID := ctx.Param("claimId")
	if err := claimStore.Remove(ctx, ctx.Param("id"), claimID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"deleted": true, "claimId": claimID})
}

// GetContradictions maps every other claiming user to their claims
func GetContradictions(ctx *gin.Context) {
	user := ctx.Param("id")
	contradictions, err := matcherService.Contradictions(ctx, user)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"user": user, "contradictions": contradictions})
}

// FindMatches returns the flattened opponent candidate list
func FindMatches(ctx *gin.Context) {
	opponents, err := matcherService.FindOpponents(ctx, ctx.Param("user"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, opponents)
}

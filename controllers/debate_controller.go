package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type postMessageRequest struct {
	From string `json:"from"`
	Text string `json:"text"`
}

type finishRequest struct {
	User       string `json:"user"`
	WantWinner bool   `json:"wantWinner"`
}

type summaryRequest struct {
	Summary string `json:"summary"`
}

// GetDebates lists the user's debates with their latest message
func GetDebates(ctx *gin.Context) {
	debates, err := debateService.ListForUser(ctx, ctx.Param("user"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, debates)
}

// PostMessage appends to an active debate and flips the turn
func PostMessage(ctx *gin.Context) {
	var request postMessageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}
	if err := debateService.PostMessage(ctx, ctx.Param("id"), request.From, request.Text); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"delivered": true})
}

// GetHistory returns the ordered message log, empty for unknown ids
func GetHistory(ctx *gin.Context) {
	history, err := debateService.History(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, history)
}

// FinishDebate records a finish vote and resolves the rendezvous when
// both votes are in.
func FinishDebate(ctx *gin.Context) {
	var request finishRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}
	result, err := debateService.Finish(ctx, ctx.Param("id"), request.User, request.WantWinner)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if result.AwaitingConfirmation {
		ctx.JSON(http.StatusOK, gin.H{"awaitingConfirmation": true})
		return
	}
	if result.Winner == "" {
		ctx.JSON(http.StatusOK, gin.H{"ended": true, "winner": nil})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ended": true, "winner": result.Winner})
}

// GetSummary returns the debate summary, empty string when unset
func GetSummary(ctx *gin.Context) {
	debateID := ctx.Param("id")
	summary, err := debateService.Summary(ctx, debateID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"debateId": debateID, "summary": summary})
}

// PutSummary overwrites the debate summary
func PutSummary(ctx *gin.Context) {
	var request summaryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}
	if err := debateService.SetSummary(ctx, ctx.Param("id"), request.Summary); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"updated": true})
}

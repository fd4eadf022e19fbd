package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createInvitationRequest struct {
	FromUser string `json:"fromUser"`
	ToUser   string `json:"toUser"`
	Topic    string `json:"topic"`
}

// CreateInvitation opens a debate invitation; field validation lives in
// the service so empty strings surface as 400 regardless of binding.
func CreateInvitation(ctx *gin.Context) {
	var request createInvitationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}
	id, err := invitationService.Create(ctx, request.FromUser, request.ToUser, request.Topic)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"invitationId": id, "message": "Invitation sent."})
}

// GetInvitations lists the recipient's pending invitations
func GetInvitations(ctx *gin.Context) {
	invitations, err := invitationService.ListPending(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, invitations)
}

// AcceptInvitation starts the debate; the inviter moves first
func AcceptInvitation(ctx *gin.Context) {
	debateID, err := invitationService.Accept(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"debateId": debateID, "message": "Debate started!"})
}

// RejectInvitation discards the invitation with no successor
func RejectInvitation(ctx *gin.Context) {
	if err := invitationService.Reject(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Invitation rejected."})
}

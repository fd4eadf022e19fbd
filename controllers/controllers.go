package controllers

import (
	"errors"
	"net/http"

	"debatearena/services"
	"debatearena/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	userService       *services.UserService
	claimStore        *store.ClaimStore
	matcherService    *services.MatcherService
	invitationService *services.InvitationService
	debateService     *services.DebateService
	statsStore        *store.StatsStore
	contextService    *services.ContextService
	adminService      *services.AdminService
	inbox             *store.Inbox
)

// Init wires the controller layer. Called once from main, and from
// handler tests with a test Redis and a fake profile store.
func Init(rdb *redis.Client, profiles services.Profiles) {
	claimStore = store.NewClaimStore(rdb)
	inbox = store.NewInbox(rdb)
	statsStore = store.NewStatsStore(rdb)
	userService = services.NewUserService(profiles, rdb)
	matcherService = services.NewMatcherService(claimStore)
	invitationService = services.NewInvitationService(rdb, profiles, inbox)
	debateService = services.NewDebateService(rdb, inbox)
	contextService = services.NewContextService(profiles, claimStore, debateService, statsStore, invitationService)
	adminService = services.NewAdminService(rdb, profiles, claimStore, invitationService)
}

// respondError maps service errors onto the HTTP error taxonomy.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrDuplicate):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		zap.L().Error("request failed",
			zap.String("path", ctx.FullPath()),
			zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "details": err.Error()})
	}
}

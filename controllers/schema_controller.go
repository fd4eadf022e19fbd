package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Ping is the liveness probe
func Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"ok": true, "timestamp": time.Now().UnixMilli()})
}

// GetOpenAPISchema serves a static OpenAPI 3.1 document describing the
// public surface.
func GetOpenAPISchema(ctx *gin.Context) {
	pathParam := func(name string) gin.H {
		return gin.H{"name": name, "in": "path", "required": true, "schema": gin.H{"type": "string"}}
	}
	jsonBody := func(required []string, props gin.H) gin.H {
		return gin.H{
			"required": true,
			"content": gin.H{
				"application/json": gin.H{
					"schema": gin.H{"type": "object", "properties": props, "required": required},
				},
			},
		}
	}
	ok := gin.H{"200": gin.H{"description": "OK."}}

	schema := gin.H{
		"openapi": "3.1.0",
		"info":    gin.H{"title": "Debate Arena API", "version": "v1.1.0"},
		"paths": gin.H{
			"/user": gin.H{
				"post": gin.H{
					"summary":     "Register a new user.",
					"operationId": "createUser",
					"requestBody": jsonBody([]string{"name"}, gin.H{
						"name": gin.H{"type": "string"},
						"bio":  gin.H{"type": "string"},
					}),
					"responses": gin.H{"201": gin.H{"description": "User created."}},
				},
			},
			"/user/{id}": gin.H{
				"get": gin.H{
					"summary":     "Fetch a profile.",
					"operationId": "getUserProfile",
					"parameters":  []gin.H{pathParam("id")},
					"responses":   ok,
				},
				"patch": gin.H{
					"summary":     "Update a profile.",
					"operationId": "updateUserProfile",
					"parameters":  []gin.H{pathParam("id")},
					"requestBody": jsonBody(nil, gin.H{
						"bio":    gin.H{"type": "string"},
						"status": gin.H{"type": "string", "enum": []string{"active", "inactive"}},
					}),
					"responses": ok,
				},
			},
			"/inbox/{user}": gin.H{
				"get": gin.H{
					"summary":     "Drain pending notifications.",
					"operationId": "getInboxMessages",
					"parameters":  []gin.H{pathParam("user")},
					"responses":   ok,
				},
			},
			"/user/{user}/claim": gin.H{
				"post": gin.H{
					"summary":     "Add a claim.",
					"operationId": "addClaim",
					"parameters":  []gin.H{pathParam("user")},
					"requestBody": jsonBody([]string{"text"}, gin.H{"text": gin.H{"type": "string"}}),
					"responses":   gin.H{"201": gin.H{"description": "Claim created."}},
				},
			},
			"/user/{user}/claims": gin.H{
				"get": gin.H{
					"summary":     "List claims.",
					"operationId": "getClaims",
					"parameters":  []gin.H{pathParam("user")},
					"responses":   ok,
				},
			},
			"/user/{user}/claim/{claimId}": gin.H{
				"delete": gin.H{
					"summary":     "Delete a claim.",
					"operationId": "deleteClaim",
					"parameters":  []gin.H{pathParam("user"), pathParam("claimId")},
					"responses":   ok,
				},
			},
			"/match/{user}": gin.H{
				"get": gin.H{
					"summary":     "Find debate opponents.",
					"operationId": "findMatches",
					"parameters":  []gin.H{pathParam("user")},
					"responses":   ok,
				},
			},
			"/invitation": gin.H{
				"post": gin.H{
					"summary":     "Create a debate invitation.",
					"operationId": "createInvitation",
					"requestBody": jsonBody([]string{"fromUser", "toUser", "topic"}, gin.H{
						"fromUser": gin.H{"type": "string"},
						"toUser":   gin.H{"type": "string"},
						"topic":    gin.H{"type": "string"},
					}),
					"responses": gin.H{"201": gin.H{"description": "Invitation sent."}},
				},
			},
			"/user/{user}/invitations": gin.H{
				"get": gin.H{
					"summary":     "List pending invitations.",
					"operationId": "getInvitations",
					"parameters":  []gin.H{pathParam("user")},
					"responses":   ok,
				},
			},
			"/invitation/{id}/accept": gin.H{
				"post": gin.H{
					"summary":     "Accept an invitation.",
					"operationId": "acceptInvitation",
					"parameters":  []gin.H{pathParam("id")},
					"responses":   gin.H{"200": gin.H{"description": "Debate started."}},
				},
			},
			"/invitation/{id}/reject": gin.H{
				"post": gin.H{
					"summary":     "Reject an invitation.",
					"operationId": "rejectInvitation",
					"parameters":  []gin.H{pathParam("id")},
					"responses":   gin.H{"200": gin.H{"description": "Invitation rejected."}},
				},
			},
			"/debates/{user}": gin.H{
				"get": gin.H{
					"summary":     "List debates.",
					"operationId": "getDebates",
					"parameters":  []gin.H{pathParam("user")},
					"responses":   ok,
				},
			},
			"/debate/{id}/history": gin.H{
				"get": gin.H{
					"summary":     "Fetch debate history.",
					"operationId": "getDebateHistory",
					"parameters":  []gin.H{pathParam("id")},
					"responses":   ok,
				},
			},
			"/debate/{id}/message": gin.H{
				"post": gin.H{
					"summary":     "Post a message.",
					"operationId": "sendMessage",
					"parameters":  []gin.H{pathParam("id")},
					"requestBody": jsonBody([]string{"from", "text"}, gin.H{
						"from": gin.H{"type": "string"},
						"text": gin.H{"type": "string"},
					}),
					"responses": ok,
				},
			},
			"/debate/{id}/finish": gin.H{
				"post": gin.H{
					"summary":     "Request to finish a debate.",
					"operationId": "finishDebate",
					"parameters":  []gin.H{pathParam("id")},
					"requestBody": jsonBody([]string{"user", "wantWinner"}, gin.H{
						"user":       gin.H{"type": "string"},
						"wantWinner": gin.H{"type": "boolean"},
					}),
					"responses": ok,
				},
			},
			"/user/{user}/context": gin.H{
				"get": gin.H{
					"summary":     "Fetch the aggregated user context.",
					"operationId": "getUserContext",
					"parameters":  []gin.H{pathParam("user")},
					"responses":   ok,
				},
			},
			"/leaderboard": gin.H{
				"get": gin.H{
					"summary":     "Fetch the global top 5.",
					"operationId": "getLeaderboard",
					"responses":   ok,
				},
			},
		},
	}
	ctx.JSON(http.StatusOK, schema)
}

package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elitecards/admin-console/internal/platform"
	"github.com/elitecards/admin-console/internal/session"
	"github.com/elitecards/admin-console/internal/types"
)

// AuthGateway is the slice of the record gateway the auth handler needs.
type AuthGateway interface {
	Login(ctx context.Context, creds platform.Credentials) (platform.LoginResult, error)
	Signup(ctx context.Context, req platform.SignupRequest) (types.Account, error)
}

// AuthHandler proxies authentication to the platform and manages the
// console's stored session.
type AuthHandler struct {
	gw       AuthGateway
	sessions session.Store
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(gw AuthGateway, sessions session.Store) *AuthHandler {
	return &AuthHandler{gw: gw, sessions: sessions}
}

// RegisterRoutes registers the auth routes on a public group.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/signup", h.Signup)
		auth.POST("/logout", h.Logout)
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges credentials for a platform token. Only admin accounts
// may use the console; any other role is rejected and no session is kept.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.gw.Login(c.Request.Context(), platform.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		respondError(c, err)
		return
	}

	if result.User.Role != "admin" {
		_ = h.sessions.Clear(c.Request.Context())
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied: admin account required"})
		return
	}

	if err := h.sessions.Set(c.Request.Context(), result.Token, result.User.Role); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": result.User})
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=client student"`
}

// Signup registers a new client or student account.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	account, err := h.gw.Signup(c.Request.Context(), platform.SignupRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": account})
}

// Logout clears the stored session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

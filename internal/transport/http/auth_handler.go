package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courseplatform/internal/usecase"
)

type AuthHandler struct {
	auth *usecase.AuthUseCase
}

func NewAuthHandler(auth *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/v1/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	user, err := h.auth.Register(c, req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Registered successfully", "user": user})
}

// POST /api/v1/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	access, refresh, err := h.auth.Login(c, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie("refresh_token", refresh, 7*24*3600, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "access_token": access})
}

// POST /api/v1/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Refresh token not found"})
		return
	}

	access, refresh, err := h.auth.Refresh(c, refreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie("refresh_token", refresh, 7*24*3600, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "access_token": access})
}

// GET /api/v1/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if refreshToken, err := c.Cookie("refresh_token"); err == nil {
		_ = h.auth.Logout(c, refreshToken)
	}

	c.SetCookie("refresh_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// GET /api/v1/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := parseID(c.GetString("userId"), "User")
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.auth.GetProfile(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

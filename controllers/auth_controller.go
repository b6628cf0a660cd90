package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diegoperpetuo/perpetual-backend/apperrors"
	"github.com/diegoperpetuo/perpetual-backend/models"
	"github.com/diegoperpetuo/perpetual-backend/services"
)

// loginStatusOverrides preserves the login endpoint's public contract: every
// failure, bad input included, reports 401.
var loginStatusOverrides = map[apperrors.Kind]int{
	apperrors.KindValidation: http.StatusUnauthorized,
}

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var req models.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	message, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err, "error registering user")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": message})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		respondErrorWith(ctx, err, "error logging in", loginStatusOverrides)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}

// Protected only proves the gate let the request through.
func (c *AuthController) Protected(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "access granted"})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parakita/backoffice/internal/constants"
	"github.com/parakita/backoffice/internal/dto"
	"github.com/parakita/backoffice/internal/service"
	"github.com/parakita/backoffice/pkg/logger"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles user authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	response, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.GetLogger().Warn("login failed",
			zap.String("email", req.Email),
			zap.Error(err))
		respondError(c, "Authentication failed", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Refresh exchanges a refresh token for a new token pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	response, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		logger.GetLogger().Warn("token refresh failed", zap.Error(err))
		respondError(c, "Token refresh failed", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Logout ends every session of the authenticated user
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), actorID(c)); err != nil {
		respondError(c, "Logout failed", err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Logout successful"))
}

// ConfirmEmail verifies an emailed confirmation token
func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	var req dto.ConfirmEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.auth.ConfirmEmail(c.Request.Context(), req.Email, req.Token); err != nil {
		respondError(c, "Email confirmation failed", err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Email confirmed"))
}

// ForgotPassword sends a password reset link. The response does not
// reveal whether the address exists.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		logger.GetLogger().Error("forgot password flow failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("If the account exists, a reset link has been sent"))
}

// ResetPassword redeems a reset token for a new password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), &req); err != nil {
		respondError(c, "Password reset failed", err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Password reset successful"))
}

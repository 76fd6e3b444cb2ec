package api

import (
	"net/http"

	reqdto "content-dispatch/internal/handler/dto/request"
	"content-dispatch/internal/handler/httperr"
	"content-dispatch/internal/handler/middleware"
	"content-dispatch/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// AccountHandler exposes the email verification and password reset flows.
// Request endpoints answer 202 because the mail goes out asynchronously.
type AccountHandler struct {
	commands commands.AccountCommands
}

func NewAccountHandler(cmds commands.AccountCommands) *AccountHandler {
	return &AccountHandler{commands: cmds}
}

// @Summary Request email verification
// @Tags account
// @Security BearerAuth
// @Success 202 "Accepted"
// @Failure 400 {object} httperr.Response
// @Router /api/account/verification [post]
func (h *AccountHandler) RequestVerification(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated", nil)
		return
	}

	if err := h.commands.RequestEmailVerification(c.Request.Context(), userID, clientIP(c)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Verify email address
// @Tags account
// @Accept json
// @Param request body reqdto.VerifyEmailRequest true "Verification token"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /api/account/verify [post]
func (h *AccountHandler) VerifyEmail(c *gin.Context) {
	var req reqdto.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.commands.VerifyEmail(c.Request.Context(), req.Token); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Request a password reset
// @Description Always answers 202 so the endpoint cannot be used to probe for accounts
// @Tags account
// @Accept json
// @Param request body reqdto.PasswordResetRequest true "Account email"
// @Success 202 "Accepted"
// @Failure 400 {object} httperr.Response
// @Router /api/account/password-reset [post]
func (h *AccountHandler) RequestPasswordReset(c *gin.Context) {
	var req reqdto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.commands.RequestPasswordReset(c.Request.Context(), req.Email, clientIP(c)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Reset password with a token
// @Tags account
// @Accept json
// @Param request body reqdto.PasswordResetConfirmRequest true "Token and new password"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /api/account/password-reset/confirm [post]
func (h *AccountHandler) ConfirmPasswordReset(c *gin.Context) {
	var req reqdto.PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.commands.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func clientIP(c *gin.Context) *string {
	ip := c.ClientIP()
	if ip == "" {
		return nil
	}
	return &ip
}

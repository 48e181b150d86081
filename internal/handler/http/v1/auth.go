package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const forgotPasswordMessage = "if the email is registered, a reset code has been sent"

// @Summary Register a citizen account
// @Description Create a citizen account. Any role in the request is ignored.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration request"
// @Success 201 {object} UserEnvelope
// @Failure 400 {object} MessageResponse "Invalid request, weak password or duplicate user"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if !h.bind(c, log, &input) {
		return
	}

	user := DTOToUserModel(input)
	if err := h.authService.Register(c.Request.Context(), user, input.Password); err != nil {
		h.respondError(c, log, err, "user")
		return
	}
	c.JSON(http.StatusCreated, UserEnvelope{Message: "user registered successfully", User: ModelToUserResponse(user)})
}

// @Summary Log in
// @Description Verify credentials and return the user profile.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} UserEnvelope
// @Failure 400 {object} MessageResponse "Invalid credentials"
// @Failure 429 {object} MessageResponse "Too many requests"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if !h.bind(c, log, &input) {
		return
	}

	user, err := h.authService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.respondError(c, log, err, "user")
		return
	}
	c.JSON(http.StatusOK, UserEnvelope{Message: "login successful", User: ModelToUserResponse(user)})
}

// @Summary Change password by email
// @Description Change the password of the account with the given email. The current password is required.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Change password request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse "Invalid credentials or weak password"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/auth/change-password [put]
func (h *Handler) changePasswordByEmail(c *gin.Context) {
	var input ChangePasswordRequest
	log := h.logger.WithField("method", "changePasswordByEmail")

	if !h.bind(c, log, &input) {
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), input.Email, input.CurrentPassword, input.NewPassword); err != nil {
		h.respondError(c, log, err, "user")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "password changed successfully"})
}

// @Summary Request a password reset code
// @Description Email a one-time reset code. The response is the same whether or not the email exists.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Forgot password request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse "Invalid request body"
// @Failure 429 {object} MessageResponse "Too many requests"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/auth/forgot-password [post]
func (h *Handler) forgotPassword(c *gin.Context) {
	var input ForgotPasswordRequest
	log := h.logger.WithField("method", "forgotPassword")

	if !h.bind(c, log, &input) {
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), input.Email); err != nil {
		h.respondError(c, log, err, "user")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: forgotPasswordMessage})
}

// @Summary Reset password with a code
// @Description Set a new password using the one-time code sent by email. The code can be used once.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Reset password request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse "Invalid or expired code, or weak password"
// @Failure 429 {object} MessageResponse "Too many requests"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/auth/reset-password [post]
func (h *Handler) resetPassword(c *gin.Context) {
	var input ResetPasswordRequest
	log := h.logger.WithField("method", "resetPassword")

	if !h.bind(c, log, &input) {
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), input.Email, input.Code, input.NewPassword); err != nil {
		h.respondError(c, log, err, "user")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "password reset successfully"})
}

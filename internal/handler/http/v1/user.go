package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @Summary List users
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} UserResponse
// @Failure 401 {object} MessageResponse "Unauthorized"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /usuarios [get]
func (h *Handler) listUsers(c *gin.Context) {
	log := h.logger.WithField("method", "listUsers")

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "user")
		return
	}
	c.JSON(http.StatusOK, ModelsToUserResponses(users))
}

// @Summary Get user by ID
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 400 {object} MessageResponse "Invalid user ID"
// @Failure 404 {object} MessageResponse "User not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /usuarios/{id} [get]
func (h *Handler) getUser(c *gin.Context) {
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "getUser", "id": id})

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "user")
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Create a user
// @Description Administrative creation. Role defaults to police.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user body CreateUserRequest true "User creation request"
// @Success 201 {object} UserEnvelope
// @Failure 400 {object} MessageResponse "Invalid request, weak password or duplicate user"
// @Failure 401 {object} MessageResponse "Unauthorized"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /usuarios [post]
func (h *Handler) createUser(c *gin.Context) {
	var input CreateUserRequest
	log := h.logger.WithField("method", "createUser")

	if !h.bind(c, log, &input) {
		return
	}

	user := DTOToUserModel(input)
	if err := h.userService.CreateUser(c.Request.Context(), user, input.Password); err != nil {
		h.respondError(c, log, err, "user")
		return
	}
	c.JSON(http.StatusCreated, UserEnvelope{Message: "user created successfully", User: ModelToUserResponse(user)})
}

// @Summary Update a user
// @Description Partial profile update. The password is not changed here.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Param user body UpdateUserRequest true "User update request"
// @Success 200 {object} UserResponse
// @Failure 400 {object} MessageResponse "Invalid request or duplicate user"
// @Failure 404 {object} MessageResponse "User not found"
// @Failure 401 {object} MessageResponse "Unauthorized"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /usuarios/{id} [put]
func (h *Handler) updateUser(c *gin.Context) {
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "updateUser", "id": id})

	var input UpdateUserRequest
	if !h.bind(c, log, &input) {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, DTOToUserUpdate(input))
	if err != nil {
		h.respondError(c, log, err, "user")
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Change own password
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UserChangePasswordRequest true "Change password request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse "Wrong current password or weak new password"
// @Failure 404 {object} MessageResponse "User not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /usuarios/{id}/cambiar-password [put]
func (h *Handler) changeUserPassword(c *gin.Context) {
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "changeUserPassword", "id": id})

	var input UserChangePasswordRequest
	if !h.bind(c, log, &input) {
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), id, input.CurrentPassword, input.NewPassword); err != nil {
		h.respondError(c, log, err, "user")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "password changed successfully"})
}

// @Summary Reset a user's password as administrator
// @Description Set a new password without the current one. Requires API key.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Param request body AdminResetPasswordRequest true "New password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse "Weak password"
// @Failure 401 {object} MessageResponse "Unauthorized"
// @Failure 404 {object} MessageResponse "User not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /usuarios/{id}/cambiar-password-admin [put]
func (h *Handler) adminResetPassword(c *gin.Context) {
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "adminResetPassword", "id": id})

	var input AdminResetPasswordRequest
	if !h.bind(c, log, &input) {
		return
	}

	if err := h.userService.AdminResetPassword(c.Request.Context(), id, input.NewPassword); err != nil {
		h.respondError(c, log, err, "user")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "password reset successfully"})
}

// @Summary Delete a user record
// @Description Delete only the user record; alerts and contacts stay. Requires API key.
// @Tags Users
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} MessageResponse "Invalid user ID"
// @Failure 401 {object} MessageResponse "Unauthorized"
// @Failure 404 {object} MessageResponse "User not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /usuarios/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "deleteUser", "id": id})

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err, "user")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete own account
// @Description Verify the password, then hide (preserve_alerts=true) or delete the user's alerts, delete contacts and the account.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body DeleteAccountRequest true "Account deletion request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse "Invalid credentials"
// @Failure 404 {object} MessageResponse "User not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /usuarios/{id}/eliminar-cuenta [delete]
func (h *Handler) deleteAccount(c *gin.Context) {
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "deleteAccount", "id": id})

	var input DeleteAccountRequest
	if !h.bind(c, log, &input) {
		return
	}

	if err := h.userService.DeleteAccount(c.Request.Context(), id, input.Password, input.PreserveAlerts); err != nil {
		h.respondError(c, log, err, "user")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "account deleted successfully"})
}

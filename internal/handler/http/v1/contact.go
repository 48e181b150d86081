package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// @Summary List emergency contacts of a user
// @Tags Contacts
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} ContactResponse
// @Failure 400 {object} MessageResponse "Invalid user ID"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/contactos/usuario/{id} [get]
func (h *Handler) listContacts(c *gin.Context) {
	ownerID, ok := pathID(c, "id", "user")
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "listContacts", "owner_id": ownerID})

	contacts, err := h.contactService.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		h.respondError(c, log, err, "contact")
		return
	}
	c.JSON(http.StatusOK, ModelsToContactResponses(contacts))
}

// @Summary Create an emergency contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param contact body CreateContactRequest true "Contact creation request"
// @Success 201 {object} ContactResponse
// @Failure 400 {object} MessageResponse "Invalid request or unknown owner"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/contactos/crear [post]
func (h *Handler) createContact(c *gin.Context) {
	var input CreateContactRequest
	log := h.logger.WithField("method", "createContact")

	if !h.bind(c, log, &input) {
		return
	}
	ownerID, err := uuid.Parse(input.OwnerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid owner ID", Field: "owner_id"})
		return
	}

	contact := DTOToContactModel(input, ownerID)
	if err := h.contactService.CreateContact(c.Request.Context(), contact); err != nil {
		h.respondError(c, log, err, "contact")
		return
	}
	c.JSON(http.StatusCreated, ModelToContactResponse(contact))
}

// @Summary Update an emergency contact
// @Description Owner and notification flag are not changed here.
// @Tags Contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param contact body UpdateContactRequest true "Contact update request"
// @Success 200 {object} ContactResponse
// @Failure 400 {object} MessageResponse "Invalid request"
// @Failure 404 {object} MessageResponse "Contact not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/contactos/{id} [put]
func (h *Handler) updateContact(c *gin.Context) {
	id, ok := pathID(c, "id", "contact")
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "updateContact", "id": id})

	var input UpdateContactRequest
	if !h.bind(c, log, &input) {
		return
	}

	contact, err := h.contactService.UpdateContact(c.Request.Context(), UpdateDTOToContactModel(input, id))
	if err != nil {
		h.respondError(c, log, err, "contact")
		return
	}
	c.JSON(http.StatusOK, ModelToContactResponse(contact))
}

// @Summary Delete an emergency contact
// @Tags Contacts
// @Param id path string true "Contact ID"
// @Success 204 "No Content"
// @Failure 400 {object} MessageResponse "Invalid contact ID"
// @Failure 404 {object} MessageResponse "Contact not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/contactos/{id} [delete]
func (h *Handler) deleteContact(c *gin.Context) {
	id, ok := pathID(c, "id", "contact")
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "deleteContact", "id": id})

	if err := h.contactService.DeleteContact(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err, "contact")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Enable or disable alert emails for a contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param request body ToggleNotificationsRequest true "Notification flag"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse "Invalid request"
// @Failure 404 {object} MessageResponse "Contact not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/contactos/{id}/notificaciones [patch]
func (h *Handler) toggleContactNotifications(c *gin.Context) {
	id, ok := pathID(c, "id", "contact")
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "toggleContactNotifications", "id": id})

	var input ToggleNotificationsRequest
	if !h.bind(c, log, &input) {
		return
	}

	if err := h.contactService.ToggleNotifications(c.Request.Context(), id, *input.Enabled); err != nil {
		h.respondError(c, log, err, "contact")
		return
	}

	message := "notifications disabled"
	if *input.Enabled {
		message = "notifications enabled"
	}
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

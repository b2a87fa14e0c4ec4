package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"contactbook/internal/repository"
	"contactbook/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errInternal     = "internal server error"
	errNotFound     = "contact not found"
	errInvalidID    = "invalid contact id"
	errInvalidBody  = "invalid body: "
	errListContacts = "failed to load contacts"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(requestIDCtx)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Request DTO shared by create and update. binding:"required" rejects
// absent and empty fields before the service is ever called.
type contactRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// ContactRequest is an exported model for Swagger docs of the contact payload.
type ContactRequest struct {
	FirstName   string `json:"firstName" example:"John"`
	LastName    string `json:"lastName" example:"Doe"`
	PhoneNumber string `json:"phoneNumber" example:"123-456-7890"`
}

func (r contactRequest) toInput() service.ContactInput {
	return service.ContactInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
	}
}

// contactID parses the :id path parameter, writing a 400 on garbage.
// Returns false if the request was already handled.
func contactID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidID})
		return 0, false
	}
	return id, true
}

// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body      ContactRequest  true  "Contact payload"
// @Success      201   {object}  models.Contact
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/contacts [post]
// @Security     BearerAuth
func (h *Handler) createContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBody + err.Error()})
		return
	}

	contact, err := h.services.Contacts.Create(c.Request.Context(), userID(c), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "contact_create_failed", err, "user_id", userID(c))
		return
	}
	c.JSON(http.StatusCreated, contact)
}

// @Summary      List own contacts
// @Tags         contacts
// @Produce      json
// @Success      200  {array}   models.Contact
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/contacts [get]
// @Security     BearerAuth
func (h *Handler) listContacts(c *gin.Context) {
	contacts, err := h.services.Contacts.List(c.Request.Context(), userID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListContacts, "contact_list_failed", err, "user_id", userID(c))
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// @Summary      Get a single contact
// @Tags         contacts
// @Produce      json
// @Param        id   path      int  true  "Contact ID"
// @Success      200  {object}  models.Contact
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/contacts/{id} [get]
// @Security     BearerAuth
func (h *Handler) getContact(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}

	contact, err := h.services.Contacts.GetOne(c.Request.Context(), userID(c), id)
	if err != nil {
		// A foreign contact and a missing one answer identically.
		if errors.Is(err, repository.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "contact_get_failed", err, "user_id", userID(c), "contact_id", id)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// @Summary      Update a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Contact ID"
// @Param        body  body      ContactRequest  true  "Contact payload"
// @Success      200   {object}  models.Contact
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/contacts/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateContact(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBody + err.Error()})
		return
	}

	contact, err := h.services.Contacts.Update(c.Request.Context(), userID(c), id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrContactNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errNotFound})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "contact_update_failed", err, "user_id", userID(c), "contact_id", id)
		}
		return
	}
	c.JSON(http.StatusOK, contact)
}

// @Summary      Delete a contact
// @Tags         contacts
// @Produce      json
// @Param        id   path      int  true  "Contact ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/contacts/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteContact(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}

	if err := h.services.Contacts.Delete(c.Request.Context(), userID(c), id); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "contact_delete_failed", err, "user_id", userID(c), "contact_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "contact deleted"})
}

package handlers

import (
	"errors"
	"net/http"

	"contactbook/internal/repository"
	"contactbook/internal/service"

	"github.com/gin-gonic/gin"
)

// Single, shared credentials payload for both registration and login.
type authCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      authCredentials  true  "Credentials"
// @Success      201   {object}  map[string]interface{}  "id, username"
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/users [post]
func (h *Handler) registerUser(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id, err := h.services.SignUp(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "sign_up_failed", err, "username", input.Username)
		return
	}

	// Echo only id and username; the digest stays server-side.
	c.JSON(http.StatusCreated, gin.H{"id": id, "username": input.Username})
}

// @Summary      Log in and obtain a bearer token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      authCredentials  true  "Credentials"
// @Success      200   {object}  map[string]string  "token"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/login [post]
func (h *Handler) login(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(input.Username, input.Password)
	if err != nil {
		// Unknown username and wrong password produce the same response.
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("login_rejected", "username", input.Username)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "login_failed", err, "username", input.Username)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// @Summary      Log out
// @Description  Purely advisory: there is no server-side session state, the client discards its token.
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/logout [post]
// @Security     BearerAuth
func (h *Handler) logout(c *gin.Context) {
	// Nothing to invalidate; the gate already verified the token.
	c.JSON(http.StatusOK, gin.H{"message": "logout successful"})
}

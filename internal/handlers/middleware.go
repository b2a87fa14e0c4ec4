package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userIDCtx    = "userId"
	requestIDCtx = "requestId"

	requestIDHeader = "X-Request-ID"
)

// authMiddleware is the gate on every protected route. A missing or
// blank credential is 401; a credential that reaches the verifier and
// fails is 403. The gate touches no storage, it only binds the user id
// into the request context.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	userID, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	// store in Gin context
	c.Set(userIDCtx, userID)
	c.Next()
}

// userID reads the authenticated user's id bound by authMiddleware.
func userID(c *gin.Context) int {
	return c.GetInt(userIDCtx)
}

// requestIDMiddleware tags each request with a UUID, echoed back in
// X-Request-ID and attached to log lines. Incoming ids are preserved
// so callers can correlate across services.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDCtx, id)
	c.Writer.Header().Set(requestIDHeader, id)
	c.Next()
}

// requestLogMiddleware logs one line per request with outcome and latency.
func (h *Handler) requestLogMiddleware(c *gin.Context) {
	if h.log == nil {
		c.Next()
		return
	}
	start := time.Now()
	c.Next()
	h.log.Infow("http_request",
		"request_id", c.GetString(requestIDCtx),
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

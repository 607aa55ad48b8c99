package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// processMessageReq binds and validates the message request body.
func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Message = strings.TrimSpace(req.Message)
	req.SessionID = strings.TrimSpace(req.SessionID)
	req.UserID = strings.TrimSpace(req.UserID)
	return req, nil
}

// bearerToken extracts the raw token from the Authorization header, empty
// when none was supplied.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// rateKey picks the limiter key for a request: the session when known,
// otherwise the caller's address.
func rateKey(c *gin.Context, sessionID string) string {
	if sessionID != "" {
		return sessionID
	}
	return c.ClientIP()
}

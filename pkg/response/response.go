// Package response holds the shared HTTP response envelope. Success payloads
// carry their own success flag so the body stays flat; failures always reduce
// to {success:false, message}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultErrorMessage hides internal failure detail from clients.
const DefaultErrorMessage = "Something went wrong. Please try again."

// Resp is the failure envelope.
type Resp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OK sends 200 JSON with the payload as-is.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends 400 with a client-facing message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Resp{Message: message})
}

// Unauthorized sends 401 with a client-facing message.
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Resp{Message: message})
}

// Conflict sends 409 with a client-facing message.
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Resp{Message: message})
}

// NotFound sends 404 with a client-facing message.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Resp{Message: message})
}

// TooManyRequests sends 429 with a client-facing message.
func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, Resp{Message: message})
}

// InternalError sends 500 with the default message, never the error itself.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{Message: DefaultErrorMessage})
}

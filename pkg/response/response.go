package response

import (
	"notes-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response body for every API endpoint.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

func New(statusCode int, data any, message string) Envelope {
	if message == "" {
		message = "success"
	}
	return Envelope{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}

// JSON writes an enveloped response.
func JSON(c *gin.Context, statusCode int, data any, message string) {
	c.JSON(statusCode, New(statusCode, data, message))
}

// Error writes an enveloped error response, mapping the error kind to
// its status code.
func Error(c *gin.Context, err error) {
	status := apperr.Status(err)
	c.JSON(status, New(status, nil, apperr.Message(err)))
}

// AbortError is Error for middleware: it also stops the handler chain.
func AbortError(c *gin.Context, err error) {
	status := apperr.Status(err)
	c.AbortWithStatusJSON(status, New(status, nil, apperr.Message(err)))
}

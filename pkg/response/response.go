// Package response holds the small set of JSON response helpers shared
// by the HTTP handlers. Error bodies use the {"error": message} shape the
// web client expects.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes data as a 200 JSON response.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error writes an error message with the given status code.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// BadRequest writes a 400 response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// InternalError writes a 500 response.
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// Package httpx groups the gin middleware and the uniform response envelope
// shared by every endpoint.
package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes the success envelope, merging the endpoint payload into
// {"success": true, ...}.
func OK(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Fail writes the failure envelope {"success": false, "error": msg}.
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// response.go - The shared JSON envelope and the error-to-status mapping
//
// Every endpoint answers with the same shape:
//   success: {"success": true,  "data": ...}            (optionally "count", "message")
//   failure: {"success": false, "message": ...}         (500 may add "error")

package handlers

import (
	"errors"
	"net/http"

	"go-recipe-backend/database"

	"github.com/gin-gonic/gin"
)

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondList(c *gin.Context, count int, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count, "data": data})
}

// respondListMessage is respondList plus a human-readable note, used when a
// listing is legitimately empty.
func respondListMessage(c *gin.Context, count int, data interface{}, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count, "data": data, "message": message})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondStoreError maps store failures onto the envelope. Not-found and
// conflict get their specific statuses with the supplied messages; anything
// else is a 500 carrying the driver text in "error".
func respondStoreError(c *gin.Context, err error, notFoundMsg, conflictMsg string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondError(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, database.ErrConflict):
		respondError(c, http.StatusConflict, conflictMsg)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "internal server error",
			"error":   err.Error(),
		})
	}
}

package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"loja-backend/models"
)

// respondError maps domain errors onto HTTP status codes. Anything
// unrecognized is a 500 with a generic message.
func respondError(c *gin.Context, err error, fallback string) {
	var validationErr *models.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(400, gin.H{"success": false, "message": validationErr.Message})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(404, gin.H{"success": false, "message": "Not found"})
	case errors.Is(err, models.ErrDuplicate):
		c.JSON(409, gin.H{"success": false, "message": "Value already exists"})
	case errors.Is(err, models.ErrInsufficientStock):
		c.JSON(409, gin.H{"success": false, "message": "Insufficient stock"})
	case errors.Is(err, models.ErrInvalidTransition):
		c.JSON(409, gin.H{"success": false, "message": "Invalid status transition"})
	default:
		c.JSON(500, gin.H{"success": false, "message": fallback})
	}
}

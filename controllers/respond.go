package controllers

import (
	"errors"
	"net/http"

	"github.com/vidheexx/Nutrimate/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service failures to status codes. Storage faults never
// leak internal detail.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrInvalidGoal),
		errors.Is(err, services.ErrUnknownBowlSize),
		errors.Is(err, services.ErrInvalidImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

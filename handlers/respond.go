package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quickdrop/services/booking"
	"quickdrop/services/pod"
)

// respondServiceError translates service errors into HTTP responses. Business
// failures carry their user-facing message; anything else is a 500 with the
// raw error.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case booking.IsValidation(err) || pod.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": serviceErrorMessage(err)})
	case booking.IsNotFound(err) || pod.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": serviceErrorMessage(err)})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func serviceErrorMessage(err error) string {
	var be *booking.BookingError
	if errors.As(err, &be) {
		return be.Message
	}
	var pe *pod.PODError
	if errors.As(err, &pe) {
		return pe.Message
	}
	return err.Error()
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quickdrop/services/tracking"
)

// TrackingHandler answers public tracking lookups by booking ID.
type TrackingHandler struct {
	Service *tracking.Service
}

// TrackBookingHandler returns the booking, its proof of delivery if any, and
// a derived status line.
func (h *TrackingHandler) TrackBookingHandler(c *gin.Context) {
	view, err := h.Service.Track(c.Request.Context(), c.Param("bookingID"))
	if errors.Is(err, tracking.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No booking found for that ID. Please double-check your tracking number."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

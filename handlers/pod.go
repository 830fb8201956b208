package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quickdrop/models"
	"quickdrop/services/pod"
	"quickdrop/services/storage"
)

// PODHandler exposes the proof-of-delivery protocol. Driver completion is a
// multipart submission: photo files, a base64 signature image and the
// device's coordinates. The booking is checked before artifacts are uploaded
// so a rejected submission never leaves orphaned files in storage.
type PODHandler struct {
	Service    pod.PODService
	StorageSvc storage.StorageService
}

// MarkInTransitHandler moves a scheduled booking into transit.
func (h *PODHandler) MarkInTransitHandler(c *gin.Context) {
	record, err := h.Service.MarkInTransit(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": record})
}

// DriverCompleteHandler accepts the driver's proof bundle and advances the
// booking to Driver Approved.
func (h *PODHandler) DriverCompleteHandler(c *gin.Context) {
	bookingID := c.Param("bookingID")

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form", "details": err.Error()})
		return
	}

	photos := form.File["photos"]
	if len(photos) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one delivery photo is required"})
		return
	}
	signature := c.PostForm("signature")
	if signature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "driver signature is required"})
		return
	}
	lat, latErr := strconv.ParseFloat(c.PostForm("latitude"), 64)
	lng, lngErr := strconv.ParseFloat(c.PostForm("longitude"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid latitude and longitude are required"})
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.EnsureDriverCompletionAllowed(ctx, bookingID); err != nil {
		respondServiceError(c, err)
		return
	}

	photoFolder := "pod/" + bookingID + "/photos"
	var photoURLs []string
	for _, fileHeader := range photos {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read photo", "details": err.Error()})
			return
		}
		url, err := h.StorageSvc.UploadFile(ctx, file, photoFolder)
		file.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload photo", "details": err.Error()})
			return
		}
		photoURLs = append(photoURLs, url)
	}

	signatureURL, err := h.StorageSvc.UploadDataURI(ctx, signature, "pod/"+bookingID+"/signatures")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload signature", "details": err.Error()})
		return
	}

	proof, err := h.Service.RecordDriverCompletion(ctx, bookingID, pod.DriverSubmission{
		PhotoURLs:    photoURLs,
		SignatureURL: signatureURL,
		Location: &models.GeoPoint{
			Latitude:  lat,
			Longitude: lng,
			Timestamp: time.Now(),
		},
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	getLogger(c).Info("driver proof submitted",
		zap.String("booking_id", bookingID),
		zap.Int("photos", len(photoURLs)),
	)
	c.JSON(http.StatusOK, gin.H{"proofOfDelivery": proof})
}

// CustomerDecisionHandler records the customer's approval or dispute.
func (h *PODHandler) CustomerDecisionHandler(c *gin.Context) {
	bookingID := c.Param("bookingID")

	var input struct {
		Approved      bool   `json:"approved"`
		Signature     string `json:"signature,omitempty"`
		DisputeReason string `json:"disputeReason,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	decision := pod.CustomerDecision{
		Approved:      input.Approved,
		DisputeReason: input.DisputeReason,
	}
	if input.Approved && input.Signature != "" {
		url, err := h.StorageSvc.UploadDataURI(c.Request.Context(), input.Signature, "pod/"+bookingID+"/signatures")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload signature", "details": err.Error()})
			return
		}
		decision.SignatureURL = url
	}

	proof, err := h.Service.RecordCustomerDecision(c.Request.Context(), bookingID, decision)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proofOfDelivery": proof})
}

// GetPODHandler returns the stored proof of delivery for a booking.
func (h *PODHandler) GetPODHandler(c *gin.Context) {
	proof, err := h.Service.GetPOD(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proofOfDelivery": proof})
}

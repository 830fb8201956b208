package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickdrop/models"
	"quickdrop/services/catalog"
)

// CatalogHandler serves the static reference data the booking funnel renders:
// packages, add-ons, time windows and policy text.
type CatalogHandler struct {
	Catalog *catalog.Catalog
}

// GetCatalogHandler returns the lineup for a service type. Defaults to
// delivery when no service is specified.
func (h *CatalogHandler) GetCatalogHandler(c *gin.Context) {
	service := models.ServiceType(c.DefaultQuery("service", string(models.ServiceTypeDelivery)))
	if !service.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown service type; allowed values are 'delivery' and 'removal'"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"serviceType": service,
		"packages":    h.Catalog.PackagesFor(service),
		"addOns":      h.Catalog.AddOnsFor(service),
		"upsellMenu":  h.Catalog.UpsellMenu(),
		"timeWindows": h.Catalog.TimeWindows(),
	})
}

// GetPoliciesHandler returns the customer-facing cancellation and refund terms.
func (h *CatalogHandler) GetPoliciesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cancellation": h.Catalog.CancellationPolicy(),
		"refund":       h.Catalog.RefundPolicy(),
	})
}

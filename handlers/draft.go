package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickdrop/models"
	"quickdrop/services/booking"
	"quickdrop/services/catalog"
)

// DraftHandler exposes the draft funnel: one mutable booking draft per
// session, every mutation returning the full re-priced draft.
type DraftHandler struct {
	Service booking.DraftService
	Catalog *catalog.Catalog
}

// CreateDraftHandler starts a new draft session.
func (h *DraftHandler) CreateDraftHandler(c *gin.Context) {
	draft, err := h.Service.CreateDraft(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"draft": draft})
}

// GetDraftHandler returns the session's current draft.
func (h *DraftHandler) GetDraftHandler(c *gin.Context) {
	draft, err := h.Service.GetDraft(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SetServiceTypeHandler switches the draft between delivery and removal.
func (h *DraftHandler) SetServiceTypeHandler(c *gin.Context) {
	var input struct {
		ServiceType models.ServiceType `json:"serviceType"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Service.SetServiceType(c.Request.Context(), c.Param("sessionID"), input.ServiceType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SelectPackageHandler sets the draft's package by name.
func (h *DraftHandler) SelectPackageHandler(c *gin.Context) {
	var input struct {
		PackageName string `json:"packageName"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Service.SelectPackage(c.Request.Context(), c.Param("sessionID"), input.PackageName)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// ToggleAddOnHandler checks or unchecks an add-on. The value fields are
// interpreted per the add-on's kind: option for dropdowns, quantity for
// per-unit inputs, price for upsell selections.
func (h *DraftHandler) ToggleAddOnHandler(c *gin.Context) {
	var input struct {
		Checked  bool    `json:"checked"`
		Option   string  `json:"option"`
		Quantity int     `json:"quantity"`
		Price    float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	addOnID := c.Param("addOnID")
	value := models.AddOnValue{Option: input.Option, Quantity: input.Quantity, Price: input.Price}
	if def, ok := h.Catalog.AddOn(addOnID); ok {
		value.Kind = def.Kind
	}

	draft, err := h.Service.ToggleAddOn(c.Request.Context(), c.Param("sessionID"), addOnID, input.Checked, value)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// AddItemHandler appends a booking item.
func (h *DraftHandler) AddItemHandler(c *gin.Context) {
	var item models.BookingItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Service.AddItem(c.Request.Context(), c.Param("sessionID"), item)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// UpdateItemHandler merges partial fields into an existing item.
func (h *DraftHandler) UpdateItemHandler(c *gin.Context) {
	var patch booking.ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Service.UpdateItem(c.Request.Context(), c.Param("sessionID"), c.Param("itemID"), patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// RemoveItemHandler deletes an item from the draft.
func (h *DraftHandler) RemoveItemHandler(c *gin.Context) {
	draft, err := h.Service.RemoveItem(c.Request.Context(), c.Param("sessionID"), c.Param("itemID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SetDetailsHandler merges scheduling, pickup and contact fields.
func (h *DraftHandler) SetDetailsHandler(c *gin.Context) {
	var patch booking.DetailsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Service.SetDetails(c.Request.Context(), c.Param("sessionID"), patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// ResetDraftHandler restores the session's draft to defaults.
func (h *DraftHandler) ResetDraftHandler(c *gin.Context) {
	draft, err := h.Service.Reset(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// DiscardDraftHandler drops the session's draft entirely.
func (h *DraftHandler) DiscardDraftHandler(c *gin.Context) {
	if err := h.Service.Discard(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "draft discarded"})
}

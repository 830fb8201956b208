package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Catalog endpoints
	GetCatalogHandler  gin.HandlerFunc
	GetPoliciesHandler gin.HandlerFunc

	// Draft endpoints
	CreateDraftHandler    gin.HandlerFunc
	GetDraftHandler       gin.HandlerFunc
	SetServiceTypeHandler gin.HandlerFunc
	SelectPackageHandler  gin.HandlerFunc
	ToggleAddOnHandler    gin.HandlerFunc
	AddItemHandler        gin.HandlerFunc
	UpdateItemHandler     gin.HandlerFunc
	RemoveItemHandler     gin.HandlerFunc
	SetDetailsHandler     gin.HandlerFunc
	ResetDraftHandler     gin.HandlerFunc
	DiscardDraftHandler   gin.HandlerFunc

	// Checkout endpoints
	CheckoutHandler            gin.HandlerFunc
	ConfirmOfflineHandler      gin.HandlerFunc
	ResendNotificationsHandler gin.HandlerFunc

	// Proof-of-delivery endpoints
	MarkInTransitHandler    gin.HandlerFunc
	DriverCompleteHandler   gin.HandlerFunc
	CustomerDecisionHandler gin.HandlerFunc
	GetPODHandler           gin.HandlerFunc

	// Tracking endpoints
	TrackBookingHandler gin.HandlerFunc
}
